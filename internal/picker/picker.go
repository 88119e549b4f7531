// Package picker opens the platform "open file" dialog.
package picker

import (
	"errors"

	serr "filedrop/internal/errors"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user dismisses the dialog.
var ErrCancelled = errors.New("file selection cancelled")

// Picker asks the user for one file.
type Picker interface {
	PickFile(title string) (string, error)
}

// Func adapts a function to Picker.
type Func func(title string) (string, error)

// PickFile calls f.
func (f Func) PickFile(title string) (string, error) {
	return f(title)
}

// Native uses the operating system's dialog. It blocks until the dialog closes.
type Native struct {
	// StartDir is the directory the dialog opens in; empty means the platform default.
	StartDir string
}

// PickFile shows the dialog.
func (n Native) PickFile(title string) (string, error) {
	b := dialog.File().Title(title)
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", serr.Wrap(err, "native file dialog failed")
	}
	return path, nil
}
