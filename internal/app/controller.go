// Package app ties the path selector to the displayed file contents. It is
// driven once per frame by a frontend (the fyne window or the terminal UI).
package app

import (
	"filedrop/internal/content"
	"filedrop/internal/log"
	"filedrop/internal/selector"
)

// Loader reads a committed path for display.
type Loader interface {
	Load(path string) (*content.Document, error)
}

// Result describes what one frame changed.
type Result struct {
	// Committed is the path reported by the selector this frame, if any.
	Committed string
	// Loaded is true when Committed was read and replaced the contents.
	Loaded bool
}

// Controller owns the selector and the contents buffer.
type Controller struct {
	selector *selector.Frame
	loader   Loader
	contents string
	document *content.Document
}

// NewController creates a controller with an empty path and no contents.
func NewController(completer selector.Completer, loader Loader) *Controller {
	return &Controller{
		selector: selector.New(completer),
		loader:   loader,
	}
}

// Selector exposes the path selector so frontends can feed it key events.
func (c *Controller) Selector() *selector.Frame {
	return c.selector
}

// Contents returns the text shown in the viewer.
func (c *Controller) Contents() string {
	return c.contents
}

// SetContents records edits made in the viewer. They are never written to disk.
func (c *Controller) SetContents(text string) {
	c.contents = text
}

// Document returns the last successfully loaded document, or nil.
func (c *Controller) Document() *content.Document {
	return c.document
}

// Update runs one frame. The first of dropped, if any, is committed as if
// picked; then a committed path is loaded. A file that cannot be read as
// text leaves the previous contents in place.
func (c *Controller) Update(dropped []string) Result {
	if len(dropped) > 0 {
		c.selector.SetPickedPath(dropped[0])
	}

	path, ok := c.selector.Poll()
	if !ok {
		return Result{}
	}

	res := Result{Committed: path}
	doc, err := c.loader.Load(path)
	if err != nil {
		log.LogWithError(err).Debug("keeping previous contents")
		return res
	}

	log.LogWithFields(log.F("path", doc.Path), log.F("size", doc.Size), log.F("mime", doc.MIME)).Info("loaded file")
	c.document = doc
	c.contents = doc.Text
	res.Loaded = true
	return res
}
