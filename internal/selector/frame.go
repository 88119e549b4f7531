// Package selector holds the state behind the file-path field: the text
// being edited, the fragment a Tab cycle started from, and the one-frame
// "picked" signal raised by Enter, the open-file dialog or a dropped file.
package selector

// Completer returns the completion after current for the cycle based on input.
type Completer interface {
	Next(input, current string) string
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(input, current string) string

// Next calls f.
func (f CompleterFunc) Next(input, current string) string {
	return f(input, current)
}

// Frame is the path selector state. The zero value is not usable; use New.
type Frame struct {
	picked    bool
	path      string
	input     string
	completer Completer
}

// New returns an empty frame completing with c.
func New(c Completer) *Frame {
	return &Frame{completer: c}
}

// Path returns the current display text.
func (f *Frame) Path() string {
	return f.path
}

// CycleBase returns the fragment the current Tab cycle started from, or ""
// when no cycle is in progress.
func (f *Frame) CycleBase() string {
	return f.input
}

// Edit records a text change made by typing. It ends any Tab cycle.
func (f *Frame) Edit(text string) {
	if text == f.path {
		return
	}
	f.path = text
	f.input = ""
}

// Tab advances the completion cycle, starting one if none is in progress.
func (f *Frame) Tab() {
	if f.input == "" {
		f.input = f.path
	}
	f.path = f.completer.Next(f.input, f.path)
}

// Enter commits the current text.
func (f *Frame) Enter() {
	f.picked = true
}

// SetPickedPath replaces the text with path and commits it. Used for files
// chosen in the dialog or dropped on the window.
func (f *Frame) SetPickedPath(path string) {
	f.path = path
	f.input = ""
	f.picked = true
}

// Poll reports the committed path once per commit.
func (f *Frame) Poll() (string, bool) {
	if !f.picked {
		return "", false
	}
	f.picked = false
	return f.path, true
}
