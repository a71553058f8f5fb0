package app

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dshills/mote/internal/engine/buffer"
)

// Document is the file being edited together with its buffer.
type Document struct {
	// Path is the file path given on the command line.
	Path string

	// Name is the display name (the file's base name).
	Name string

	buffer        *buffer.Buffer
	savedRevision uint64
}

// NewDocument creates a document for path from its content.
func NewDocument(path string, content []byte) *Document {
	buf := buffer.NewBufferFromString(string(content))
	return &Document{
		Path:          path,
		Name:          filepath.Base(path),
		buffer:        buf,
		savedRevision: buf.Revision(),
	}
}

// OpenDocument reads the file at path.
// Any read failure, including a missing file, is returned as an OperationError.
// Content that is not valid UTF-8 is rejected with ErrNotUTF8.
func OpenDocument(path string) (*Document, error) {
	if path == "" {
		return nil, ErrNoFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	if !utf8.Valid(data) {
		return nil, NewOperationError("open", path, ErrNotUTF8)
	}
	return NewDocument(path, data), nil
}

// Buffer returns the document's buffer.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buffer
}

// IsModified reports whether the buffer changed since load or the last save.
func (d *Document) IsModified() bool {
	return d.buffer.Revision() != d.savedRevision
}

// Content returns the text written by Save.
func (d *Document) Content() string {
	return d.buffer.Text()
}

// Save writes the buffer to Path, replacing the file.
func (d *Document) Save() error {
	if err := os.WriteFile(d.Path, []byte(d.Content()), 0644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.savedRevision = d.buffer.Revision()
	return nil
}
