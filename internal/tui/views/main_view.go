package views

import (
	"strings"

	"filedrop/internal/tui/common"
	"filedrop/internal/tui/styles"
)

// Title is shown above the path field.
const Title = "Native file dialogs and drag-and-drop files"

func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render(Title))
	sb.WriteString("\n")

	pathStyle, viewerStyle := styles.Theme.Blurred, styles.Theme.Focused
	if m.Focus() == common.FocusPath {
		pathStyle, viewerStyle = styles.Theme.Focused, styles.Theme.Blurred
	}

	sb.WriteString(pathStyle.Render(m.PathView()))
	sb.WriteString("\n")
	if hint := m.Hint(); hint != "" {
		sb.WriteString(styles.Theme.Hint.Render(hint))
		sb.WriteString("\n")
	}
	sb.WriteString(viewerStyle.Render(m.ViewerView()))
	sb.WriteString("\n")

	if status := m.StatusView(); status != "" {
		sb.WriteString(status)
		sb.WriteString("\n")
	}

	if m.ShowHelp() {
		sb.WriteString(RenderHelp())
		sb.WriteString("\n")
	}
	sb.WriteString(RenderKeyCommands())

	return styles.Theme.App.Render(sb.String())
}

func RenderKeyCommands() string {
	return styles.Theme.Help.Render("[Tab] Complete  [Enter] Open  [Ctrl+O] File dialog  [Esc] Switch pane  [F1] Help  [Ctrl+C] Quit")
}

func RenderHelp() string {
	return styles.Theme.Help.Render(`Type a path and press Tab to cycle through matching entries.
Enter loads the file into the viewer below. Pasting or dropping a
file path onto the terminal loads it directly. Edits in the viewer
are never written back to disk.`)
}
