package common

// Focus names the widget that receives key presses.
type Focus int

const (
	FocusPath Focus = iota
	FocusViewer
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Focus() Focus
	PathView() string
	ViewerView() string
	Hint() string
	StatusView() string
	ShowHelp() bool
}
