package loader

import (
	"errors"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads TOML config files. Tables become nested maps and
// integers decode as int64.
type TOMLLoader struct {
	source
}

func NewTOMLLoader(path string) *TOMLLoader {
	return NewTOMLLoaderWithFS(DefaultFS(), path)
}

func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{source{fs: fs, path: path}}
}

func (l *TOMLLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

func (l *TOMLLoader) LoadFrom(path string) (map[string]any, error) {
	return l.loadFile(path, decodeTOML)
}

func (l *TOMLLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	return loadReader(r, decodeTOML)
}

func decodeTOML(name string, data []byte) (map[string]any, error) {
	var m map[string]any
	err := toml.Unmarshal(data, &m)
	if err == nil {
		if m == nil {
			m = map[string]any{}
		}
		return m, nil
	}

	perr := &ParseError{Path: name, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return nil, perr
}
