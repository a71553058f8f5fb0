package loader

import (
	"errors"
	"testing"
)

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/config.toml", "toml", false},
		{"/CONFIG.TOML", "toml", false},
		{"/config.json", "json", false},
		{"/config.yaml", "", true},
		{"/config", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(memfs, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath failed: %v", err)
			}

			var got string
			switch l.(type) {
			case *TOMLLoader:
				got = "toml"
			case *JSONLoader:
				got = "json"
			}
			if got != tt.want {
				t.Errorf("loader = %T, want %s", l, tt.want)
			}
		})
	}
}

func TestForPath_NilFS(t *testing.T) {
	l, err := ForPath(nil, "/does/not/exist.toml")
	if err != nil {
		t.Fatalf("ForPath failed: %v", err)
	}

	config, err := l.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if config != nil {
		t.Error("expected nil config for missing file")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.json", Message: "bad"}, "parse error in a.json: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "simple merge",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"b": 2},
			expected: map[string]any{"a": 1, "b": 2},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"logging": map[string]any{
					"level": 4,
				},
			},
			src: map[string]any{
				"logging": map[string]any{
					"file": true,
				},
			},
			expected: map[string]any{
				"logging": map[string]any{
					"level": 4,
					"file":  true,
				},
			},
		},
		{
			name: "nested override",
			dst: map[string]any{
				"logging": map[string]any{
					"level": 4,
				},
			},
			src: map[string]any{
				"logging": map[string]any{
					"level": 2,
				},
			},
			expected: map[string]any{
				"logging": map[string]any{
					"level": 2,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeepMerge(tt.dst, tt.src)
			if !mapsEqual(result, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := map[string]any{
		"string": "value",
		"int":    42,
		"nested": map[string]any{
			"deep": "data",
		},
		"array": []any{"a", "b", "c"},
	}

	cloned := Clone(original)

	// Modify original
	original["string"] = "changed"
	original["nested"].(map[string]any)["deep"] = "modified"
	original["array"].([]any)[0] = "x"

	// Cloned should be unchanged
	if cloned["string"] != "value" {
		t.Error("clone was affected by original modification")
	}
	if cloned["nested"].(map[string]any)["deep"] != "data" {
		t.Error("nested clone was affected by original modification")
	}
	if cloned["array"].([]any)[0] != "a" {
		t.Error("array clone was affected by original modification")
	}
}

func TestClone_Nil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

// mapsEqual compares two maps for equality (simple version for tests).
func mapsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		switch ta := va.(type) {
		case map[string]any:
			tb, ok := vb.(map[string]any)
			if !ok || !mapsEqual(ta, tb) {
				return false
			}
		default:
			if va != vb {
				return false
			}
		}
	}
	return true
}
