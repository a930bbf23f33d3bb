package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/psr/pkg/render"
	"github.com/dkoosis/psr/pkg/script"
)

// Out receives task headers and status lines.
var Out io.Writer = os.Stdout

var palette = render.PaletteFor(render.Dark)

// PrintH1Header prints a banner for a group of tasks.
func PrintH1Header(title string) {
	width := 80
	rule := strings.Repeat("=", width)
	fmt.Fprintf(Out, "\n%s\n%s\n%s\n\n", rule, lipgloss.PlaceHorizontal(width, lipgloss.Center, palette.Title.Render(title)), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n\n", title)
}

// PrintTask prints a step header styled like the matching script type.
func PrintTask(label string, t script.ScriptType) {
	fmt.Fprintf(Out, "%s %s\n", render.IconOf(t), palette.ScriptStyle(t).Render(label))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Out, "✅ %s\n", msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Out, "⚠️  %s\n", msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Out, "❌ %s\n", palette.Error.Render(msg))
}
