// Package tui is the terminal viewer: a section list on the left and the
// selected section, rendered by glamour, in a scrollable viewport.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/viewer"
)

// Options configures the terminal viewer.
type Options struct {
	Title    string
	Subtitle string
	// Style is a glamour standard style name ("dark", "light", "dracula",
	// "notty"). Empty or "auto" detects the terminal background.
	Style string
}

// Model is the Bubble Tea model for the guide viewer.
type Model struct {
	shell    *viewer.Shell
	opts     Options
	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool

	md      *glamour.TermRenderer
	mdWidth int
	cache   map[registry.SectionID]string
}

// New returns a model showing the first section of reg.
func New(reg *registry.Registry, opts Options) Model {
	return Model{
		shell: viewer.New(reg),
		opts:  opts,
		cache: make(map[registry.SectionID]string),
	}
}

// Run starts the viewer full-screen and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, reg *registry.Registry, opts Options) error {
	p := tea.NewProgram(New(reg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.shell.Registry().Len()

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}

	case "enter":
		m.selectIndex(m.cursor)

	case "tab":
		m.shell.Next()
		m.cursor = m.shell.Index()
		m.refresh()

	case "shift+tab":
		m.shell.Prev()
		m.cursor = m.shell.Index()
		m.refresh()

	case "pgup":
		m.viewport.PageUp()

	case "pgdown", " ":
		m.viewport.PageDown()

	case "home", "g":
		m.viewport.GotoTop()

	case "end", "G":
		m.viewport.GotoBottom()

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < n {
				m.selectIndex(i)
			}
		}
	}
	return m, nil
}

// selectIndex makes the i-th section active and moves the cursor onto it.
func (m *Model) selectIndex(i int) {
	if err := m.shell.SelectIndex(i); err != nil {
		return
	}
	m.cursor = i
	m.refresh()
}

// resize lays out the panes for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.helpView())

	// Borders take two cells on each axis.
	vpWidth := width - sidebarWidth - 2 - 2
	if vpWidth < 20 {
		vpWidth = 20
	}
	vpHeight := height - headerHeight - footerHeight - 2
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.refresh()
}

// refresh loads the shown section into the viewport, scrolled to the top.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render(m.shell.CurrentDescriptor().ID))
	m.viewport.GotoTop()
}

// render returns the section's markdown rendered for the viewport width.
// Rendered output is cached until the width changes.
func (m *Model) render(id registry.SectionID) string {
	wrap := m.viewport.Width - 2
	if m.md == nil || m.mdWidth != wrap {
		m.md = newMarkdownRenderer(m.opts.Style, wrap)
		m.mdWidth = wrap
		m.cache = make(map[registry.SectionID]string)
	}
	if out, ok := m.cache[id]; ok {
		return out
	}

	block := m.shell.Registry().Render(id)
	out := block.Markdown
	if m.md != nil {
		if rendered, err := m.md.Render(block.Markdown); err == nil {
			out = rendered
		}
	}
	m.cache[id] = out
	return out
}

func newMarkdownRenderer(style string, width int) *glamour.TermRenderer {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	return r
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView(),
		contentStyle.Render(m.viewport.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.helpView())
}

func (m Model) headerView() string {
	lines := []string{titleStyle.Render(m.opts.Title)}
	if m.opts.Subtitle != "" {
		lines = append(lines, subtitleStyle.Render(m.opts.Subtitle))
	}
	return headerStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(sidebarHeadingStyle.Render("Contents"))
	b.WriteString("\n")

	for i, e := range m.shell.Nav() {
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
		}
		line := fmt.Sprintf("%s%s %s", pointer, e.Icon.Symbol(), e.Label)
		if e.Active {
			line = activeItemStyle.Render(line)
		} else {
			line = itemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) helpView() string {
	pct := 0.0
	if m.ready {
		pct = m.viewport.ScrollPercent() * 100
	}
	return helpStyle.Render(fmt.Sprintf(
		"↑/↓ move • enter select • 1-9 jump • tab next • pgup/pgdn scroll • q quit  %3.0f%%", pct,
	))
}
