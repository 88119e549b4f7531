package gui

import (
	"errors"
	"unicode/utf8"

	"filedrop/internal/app"
	"filedrop/internal/config"
	"filedrop/internal/log"
	"filedrop/internal/picker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// AppID identifies the application to fyne for preferences storage.
	AppID = "io.github.filedrop"
	// WindowTitle is the fixed caption of the main window.
	WindowTitle = "Native file dialogs and drag-and-drop files"

	dialogTitle = "Open file"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	controller *app.Controller
	picker     picker.Picker

	pathEntry  *pathEntry
	openButton *widget.Button
	viewer     *widget.Entry
	status     *widget.Label

	// syncing is set while widgets are updated from controller state, so
	// their change callbacks are not mistaken for user edits.
	syncing bool
}

// NewApp builds the main window around controller. p is used for the
// "Open file…" button unless the config selects the built-in dialog.
func NewApp(fyneApp fyne.App, cfg *config.Config, controller *app.Controller, p picker.Picker) *App {
	fyneApp.SetIcon(theme.FileTextIcon())

	a := &App{
		fyneApp:    fyneApp,
		cfg:        cfg,
		controller: controller,
		picker:     p,
	}

	a.mainWindow = fyneApp.NewWindow(WindowTitle)
	a.mainWindow.SetMaster()
	a.setupMainWindow()

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.mainWindow.Show()
	a.fyneApp.Run()
}

// setupMainWindow creates the widgets and wires their events.
func (a *App) setupMainWindow() {
	sel := a.controller.Selector()

	a.pathEntry = newPathEntry()
	a.pathEntry.OnChanged = func(text string) {
		if a.syncing {
			return
		}
		sel.Edit(text)
		a.frame(nil)
	}
	a.pathEntry.onTab = func() {
		sel.Tab()
		a.frame(nil)
	}
	a.pathEntry.OnSubmitted = func(string) {
		sel.Enter()
		a.frame(nil)
	}

	a.openButton = widget.NewButtonWithIcon("Open file…", theme.FolderOpenIcon(), a.openFile)

	a.viewer = widget.NewMultiLineEntry()
	a.viewer.TextStyle = fyne.TextStyle{Monospace: a.cfg.Viewer.Monospace}
	if a.cfg.Viewer.Wrap {
		a.viewer.Wrapping = fyne.TextWrapWord
	} else {
		a.viewer.Wrapping = fyne.TextWrapOff
	}
	a.viewer.OnChanged = func(text string) {
		if a.syncing {
			return
		}
		a.controller.SetContents(text)
	}

	a.status = widget.NewLabel("")
	a.status.Truncation = fyne.TextTruncateEllipsis

	top := container.NewBorder(nil, nil, nil, a.openButton, a.pathEntry)
	a.mainWindow.SetContent(container.NewBorder(top, a.status, nil, nil, a.viewer))
	a.mainWindow.Resize(fyne.NewSize(a.cfg.Window.Width, a.cfg.Window.Height))
	a.mainWindow.Canvas().Focus(a.pathEntry)

	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.HandleDrop(uris)
	})

	a.mainWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		a.openFile()
	})
}

// HandleDrop commits the first dropped local file.
func (a *App) HandleDrop(uris []fyne.URI) {
	var paths []string
	for _, uri := range uris {
		if uri == nil || uri.Scheme() != "file" {
			continue
		}
		paths = append(paths, uri.Path())
	}
	if len(paths) == 0 {
		return
	}
	log.LogWithFields(log.F("path", paths[0]), log.F("count", len(paths))).Debug("file dropped")
	a.frame(paths)
}

// openFile runs the file dialog and commits the chosen path.
func (a *App) openFile() {
	if a.picker == nil || a.cfg.Picker.Backend == config.PickerBuiltin {
		a.showBuiltinDialog()
		return
	}

	path, err := a.picker.PickFile(dialogTitle)
	switch {
	case err == nil:
		a.pick(path)
	case errors.Is(err, picker.ErrCancelled):
		log.Debug("file dialog cancelled")
	default:
		log.LogWithError(err).Warn("native dialog unavailable, using built-in dialog")
		a.showBuiltinDialog()
	}
}

// showBuiltinDialog uses fyne's own open dialog inside the window.
func (a *App) showBuiltinDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.LogWithError(err).Warn("file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.LogWithError(cerr).Debug("closing dialog selection")
		}
		a.pick(path)
	}, a.mainWindow)
}

func (a *App) pick(path string) {
	a.controller.Selector().SetPickedPath(path)
	a.frame(nil)
}

// frame runs one controller update and pushes its state into the widgets.
func (a *App) frame(dropped []string) {
	res := a.controller.Update(dropped)

	a.syncing = true
	defer func() { a.syncing = false }()

	path := a.controller.Selector().Path()
	if a.pathEntry.Text != path {
		a.pathEntry.SetText(path)
		a.pathEntry.CursorColumn = utf8.RuneCountInString(path)
		a.pathEntry.Refresh()
	}

	if res.Loaded {
		a.viewer.SetText(a.controller.Contents())
		a.status.SetText(a.controller.Document().Summary())
	}
}
