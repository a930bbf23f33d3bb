package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/psr/pkg/render"
	"github.com/dkoosis/psr/pkg/script"
)

var titleCase = cases.Title(language.English)

func (m Model) View() string {
	p := m.opts.Palette
	header := m.viewHeader()
	detail := m.viewDetail()
	var keys help.KeyMap = browseKeys{m.keys}
	if m.app.Searching() {
		keys = searchKeys{m.keys}
	}
	footer := []string{"", detail}
	if m.app.Searching() {
		footer = append(footer, m.search.View())
	}
	footer = append(footer, "", p.Muted.Render(m.help.View(keys)))

	sections := []string{header, ""}
	sections = append(sections, m.viewList(m.listHeight(header, footer))...)
	sections = append(sections, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// listHeight is the room left for script rows once the chrome is drawn.
// Zero means the window size is not known yet and every row is drawn.
func (m Model) listHeight(header string, footer []string) int {
	if m.height <= 0 {
		return 0
	}
	chrome := lipgloss.Height(header) + 1
	for _, f := range footer {
		chrome += lipgloss.Height(f)
	}
	return max(m.height-chrome, 1)
}

func (m Model) viewHeader() string {
	p := m.opts.Palette
	tabs := []string{p.Title.Render("psr")}
	for i, proj := range m.app.Projects() {
		style := p.Tab
		if proj.Name == "" {
			style = p.TabLive
		}
		if i == m.app.ProjectIndex() {
			style = p.TabOn
		}
		tabs = append(tabs, style.Render(proj.DisplayName()))
	}
	cur := m.app.CurrentProject()
	path := p.Muted.Render(fmt.Sprintf("%s · %s", cur.Manager.Kind, cur.Path))
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), path)
}

func (m Model) viewList(height int) []string {
	p := m.opts.Palette
	rows := m.app.Rows()
	if len(rows) == 0 {
		if m.app.Searching() {
			return []string{p.Muted.Render(fmt.Sprintf("  no scripts match %q", m.app.Query()))}
		}
		return []string{p.Muted.Render("  no scripts found")}
	}

	start, end := visibleWindow(len(rows), m.app.Cursor(), height)
	nameWidth := 0
	for _, r := range rows {
		if !r.Divider {
			nameWidth = max(nameWidth, runewidth.StringWidth(m.app.Script(r).Name))
		}
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := rows[i]
		if r.Divider {
			lines = append(lines, p.Divider.Render("  "+strings.Repeat("─", max(min(m.width-4, 40), 4))))
			continue
		}
		lines = append(lines, m.viewRow(m.app.Script(r), nameWidth, i == m.app.Cursor()))
	}
	return lines
}

func (m Model) viewRow(s script.Script, nameWidth int, selected bool) string {
	p := m.opts.Palette
	marker := "  "
	if selected {
		marker = "▸ "
	}
	badge := "   "
	if s.HasShortcut() {
		badge = p.Shortcut.Render(fmt.Sprintf("[%c]", s.Shortcut))
	}
	icon := ""
	if m.opts.ShowEmoji {
		icon = runewidth.FillRight(render.IconOf(s.Type), 3)
	}
	name := p.ScriptStyle(s.Type).Render(runewidth.FillRight(s.Name, nameWidth))

	used := 2 + 4 + runewidth.StringWidth(icon) + nameWidth + 2
	command := p.Muted.Render(runewidth.Truncate(s.Command, max(m.width-used, 8), "…"))

	line := marker + badge + " " + icon + name + "  " + command
	if selected {
		return p.Cursor.Render(line)
	}
	return line
}

func (m Model) viewDetail() string {
	p := m.opts.Palette
	s, ok := m.app.SelectedScript()
	if !ok {
		return ""
	}
	phase := titleCase.String(s.Phase().String())
	detail := phase + " · " + s.Type.String()
	if s.Description != "" {
		detail += " · " + s.Description
	}
	return p.Muted.Render(runewidth.Truncate(detail, max(m.width, 20), "…"))
}

// visibleWindow returns the row range to draw so the cursor stays visible.
func visibleWindow(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, min(start+height, total)
}
