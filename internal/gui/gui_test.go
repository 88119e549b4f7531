package gui

import (
	"os"
	"path/filepath"
	"testing"

	"filedrop/internal/app"
	"filedrop/internal/completion"
	"filedrop/internal/config"
	"filedrop/internal/content"
	"filedrop/internal/picker"
	"filedrop/pkg/testutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp builds an App over a temp directory holding a.txt, ab.txt and b.bin.
func setupTestApp(t *testing.T, p picker.Picker) (*App, string) {
	t.Helper()

	dir := testutils.CreateTestFilesWithDefault(t)

	engine, err := completion.New(completion.Options{})
	require.NoError(t, err)
	controller := app.NewController(engine, content.NewLoader())

	a := NewApp(test.NewTempApp(t), config.New(), controller, p)
	return a, dir
}

func TestWindowSetup(t *testing.T) {
	a, _ := setupTestApp(t, nil)
	w := a.GetMainWindow()

	assert.Equal(t, WindowTitle, w.Title())
	require.NotNil(t, w.Content())
	assert.Equal(t, "Open file…", a.openButton.Text)
	assert.True(t, a.viewer.MultiLine)
	assert.True(t, a.viewer.TextStyle.Monospace)
	assert.Equal(t, fyne.TextWrapOff, a.viewer.Wrapping)
	assert.Empty(t, a.viewer.Text)
	assert.True(t, a.pathEntry.AcceptsTab())
}

func TestTabCompletesAndEnterLoads(t *testing.T) {
	a, dir := setupTestApp(t, nil)

	test.Type(a.pathEntry, filepath.Join(dir, "a"))
	assert.Equal(t, filepath.Join(dir, "a"), a.controller.Selector().Path())

	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, filepath.Join(dir, "a.txt"), a.pathEntry.Text)

	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, filepath.Join(dir, "ab.txt"), a.pathEntry.Text)
	assert.Empty(t, a.viewer.Text, "Tab does not load")

	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, filepath.Join(dir, "a.txt"), a.pathEntry.Text, "cycle wraps")

	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "alpha", a.viewer.Text)
	assert.Contains(t, a.status.Text, filepath.Join(dir, "a.txt"))
}

func TestEnterOnBinaryKeepsViewer(t *testing.T) {
	a, dir := setupTestApp(t, nil)

	a.HandleDrop([]fyne.URI{storage.NewFileURI(filepath.Join(dir, "a.txt"))})
	require.Equal(t, "alpha", a.viewer.Text)

	a.pathEntry.SetText(filepath.Join(dir, "b.bin"))
	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "alpha", a.viewer.Text)
}

func TestDropLoadsFirstFile(t *testing.T) {
	a, dir := setupTestApp(t, nil)

	a.HandleDrop([]fyne.URI{
		storage.NewFileURI(filepath.Join(dir, "ab.txt")),
		storage.NewFileURI(filepath.Join(dir, "a.txt")),
	})

	assert.Equal(t, filepath.Join(dir, "ab.txt"), a.pathEntry.Text)
	assert.Equal(t, "alpha beta", a.viewer.Text)
}

func TestDropIgnoresNonFileURIs(t *testing.T) {
	a, _ := setupTestApp(t, nil)

	u, err := storage.ParseURI("https://example.com/a.txt")
	require.NoError(t, err)
	a.HandleDrop([]fyne.URI{u})
	a.HandleDrop(nil)

	assert.Empty(t, a.pathEntry.Text)
	assert.Empty(t, a.viewer.Text)
}

func TestOpenButtonUsesPicker(t *testing.T) {
	var path string
	a, dir := setupTestApp(t, picker.Func(func(title string) (string, error) {
		assert.Equal(t, dialogTitle, title)
		return path, nil
	}))
	path = filepath.Join(dir, "ab.txt")

	test.Type(a.pathEntry, "leftover")
	test.Tap(a.openButton)

	assert.Equal(t, path, a.pathEntry.Text)
	assert.Equal(t, "alpha beta", a.viewer.Text)

	// The dialog resets the cycle, so Tab completes the picked path itself.
	a.pathEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, path, a.pathEntry.Text)
}

func TestOpenButtonCancelled(t *testing.T) {
	a, dir := setupTestApp(t, picker.Func(func(string) (string, error) {
		return "", picker.ErrCancelled
	}))

	test.Type(a.pathEntry, dir)
	test.Tap(a.openButton)

	assert.Equal(t, dir, a.pathEntry.Text)
	assert.Empty(t, a.viewer.Text)
	assert.Nil(t, a.GetMainWindow().Canvas().Overlays().Top())
}

func TestOpenButtonFallsBackToBuiltinDialog(t *testing.T) {
	a, _ := setupTestApp(t, picker.Func(func(string) (string, error) {
		return "", assert.AnError
	}))
	a.GetMainWindow().Resize(fyne.NewSize(800, 600))

	test.Tap(a.openButton)
	assert.NotNil(t, a.GetMainWindow().Canvas().Overlays().Top())
}

func TestViewerEditsStayInMemory(t *testing.T) {
	a, dir := setupTestApp(t, nil)
	file := filepath.Join(dir, "a.txt")
	a.HandleDrop([]fyne.URI{storage.NewFileURI(file)})

	a.viewer.SetText("scratch")
	assert.Equal(t, "scratch", a.controller.Contents())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))
}

func TestFactoryCreate(t *testing.T) {
	cfg := config.New()
	cfg.Completion.Exclude = []string{"[unterminated"}

	_, err := NewFactory(cfg).Create()
	assert.Error(t, err)
}
