package messages

// PickedMsg carries the result of the native file dialog.
type PickedMsg struct {
	Path string
	Err  error
}
