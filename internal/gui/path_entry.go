package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// pathEntry is a single-line entry that keeps Tab for completion instead of
// moving focus to the next widget.
type pathEntry struct {
	widget.Entry

	onTab func()
}

func newPathEntry() *pathEntry {
	e := &pathEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Type a path, Tab completes, Enter opens")
	return e
}

// AcceptsTab implements fyne.Tabbable.
func (e *pathEntry) AcceptsTab() bool {
	return true
}

// TypedKey intercepts Tab and hands everything else to the entry.
func (e *pathEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyTab {
		if e.onTab != nil {
			e.onTab()
		}
		return
	}
	e.Entry.TypedKey(key)
}
