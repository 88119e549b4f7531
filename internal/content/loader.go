// Package content loads files as text for display.
package content

import (
	"fmt"
	"unicode/utf8"

	serr "filedrop/internal/errors"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// Document is a file loaded as text.
type Document struct {
	Path string
	Text string
	Size int64
	MIME string
}

// Summary is a one-line description for status displays.
func (d *Document) Summary() string {
	return fmt.Sprintf("%s  %s  %s", d.Path, humanize.Bytes(uint64(d.Size)), d.MIME)
}

// Loader reads documents from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader over the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a loader over fs.
func NewLoaderWithFs(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads path whole. It fails for anything that is not a regular file
// holding valid UTF-8.
func (l *Loader) Load(path string) (*Document, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, serr.FromFS(err, "cannot stat file", path)
	}
	if !info.Mode().IsRegular() {
		return nil, serr.NewFileError("not a regular file", path, serr.NotAFile, nil)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, serr.FromFS(err, "cannot read file", path)
	}
	if !utf8.Valid(data) {
		return nil, serr.NewFileError("not a text file", path, serr.NotText, nil)
	}

	return &Document{
		Path: path,
		Text: string(data),
		Size: int64(len(data)),
		MIME: mimetype.Detect(data).String(),
	}, nil
}
