package loader

import (
	"errors"
	"io"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON   = errors.New("invalid JSON")
	errNotJSONObject = errors.New("top-level value must be an object")
)

// JSONLoader reads JSON config files with gjson. Numbers decode as
// float64, matching encoding/json.
type JSONLoader struct {
	source
}

func NewJSONLoader(path string) *JSONLoader {
	return NewJSONLoaderWithFS(DefaultFS(), path)
}

func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{source{fs: fs, path: path}}
}

func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	return l.loadFile(path, decodeJSON)
}

func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	return loadReader(r, decodeJSON)
}

func decodeJSON(name string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: name, Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}

	result := gjson.ParseBytes(data)
	m, ok := result.Value().(map[string]any)
	if !result.IsObject() || !ok {
		return nil, &ParseError{Path: name, Message: errNotJSONObject.Error(), Err: errNotJSONObject}
	}
	return m, nil
}
