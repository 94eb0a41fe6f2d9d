package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// PanelContent is the static text behind each panel tab.
type PanelContent struct {
	Terminal     []string
	Output       []string
	DebugConsole []string
	Problems     []workspace.Problem
}

// Panel is the bottom panel: a tab row above a scrollable body.
type Panel struct {
	viewport viewport.Model
	content  PanelContent
	tab      workspace.PanelTab
	width    int
	height   int
}

// NewPanel creates a panel over content
func NewPanel(content PanelContent) *Panel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	p := &Panel{viewport: vp, content: content}
	p.render()
	return p
}

// SetSize sets the outer panel dimensions, border included
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	ctx := GetViewContext()
	p.viewport.SetWidth(ctx.InnerWidth(width))
	p.viewport.SetHeight(max(ctx.InnerHeight(height)-TitleHeight, 1))
	p.render()
}

// SetTab switches the body to tab. The terminal opens scrolled to its
// last line, the others at the top.
func (p *Panel) SetTab(tab workspace.PanelTab) {
	if tab == p.tab {
		return
	}
	p.tab = tab
	p.render()
}

// Tab returns the tab being shown
func (p *Panel) Tab() workspace.PanelTab {
	return p.tab
}

// AppendDebugConsole adds a line to the debug console
func (p *Panel) AppendDebugConsole(line string) {
	p.content.DebugConsole = append(p.content.DebugConsole, line)
	if p.tab == workspace.PanelDebugConsole {
		p.render()
	}
}

// Body returns the unstyled lines of the current tab
func (p *Panel) Body() []string {
	switch p.tab {
	case workspace.PanelTerminal:
		return p.content.Terminal
	case workspace.PanelProblems:
		lines := make([]string, len(p.content.Problems))
		for i, pr := range p.content.Problems {
			lines[i] = problemLine(pr)
		}
		if len(lines) == 0 {
			return []string{"No problems have been detected in the workspace."}
		}
		return lines
	case workspace.PanelOutput:
		return p.content.Output
	case workspace.PanelDebugConsole:
		return p.content.DebugConsole
	default:
		return nil
	}
}

func problemLine(pr workspace.Problem) string {
	icon := "ⓘ"
	switch pr.Severity {
	case workspace.SeverityError:
		icon = "⊗"
	case workspace.SeverityWarning:
		icon = "⚠"
	}
	return fmt.Sprintf("%s %s  %s [Ln %d, Col %d]", icon, pr.Message, pr.File, pr.Line, pr.Col)
}

func (p *Panel) render() {
	body := p.Body()
	styled := make([]string, len(body))
	for i, line := range body {
		styled[i] = p.styleLine(i, line)
	}
	p.viewport.SetContent(strings.Join(styled, "\n"))
	if p.tab == workspace.PanelTerminal {
		p.viewport.GotoBottom()
	} else {
		p.viewport.GotoTop()
	}
}

func (p *Panel) styleLine(i int, line string) string {
	switch p.tab {
	case workspace.PanelTerminal:
		if prompt, cmd, ok := strings.Cut(line, "$ "); ok {
			return lipgloss.NewStyle().Foreground(ColorSuccess).Render(prompt+"$ ") + cmd
		}
	case workspace.PanelProblems:
		if i < len(p.content.Problems) {
			switch p.content.Problems[i].Severity {
			case workspace.SeverityError:
				return lipgloss.NewStyle().Foreground(ColorError).Render(line[:len("⊗")]) + line[len("⊗"):]
			case workspace.SeverityWarning:
				return lipgloss.NewStyle().Foreground(ColorWarning).Render(line[:len("⚠")]) + line[len("⚠"):]
			}
		}
	case workspace.PanelOutput, workspace.PanelDebugConsole:
		return MutedStyle.Render(line)
	}
	return line
}

// Update handles scrolling keys
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// TabRow renders the panel tabs; the problems tab carries a count badge
func (p *Panel) TabRow() string {
	parts := make([]string, 0, len(workspace.PanelTabs))
	for _, t := range workspace.PanelTabs {
		label := strings.ToUpper(t.Title())
		if t == workspace.PanelProblems {
			label += fmt.Sprintf(" (%d)", len(p.content.Problems))
		}
		if t == p.tab {
			parts = append(parts, TabActiveStyle.Render(" "+label+" "))
		} else {
			parts = append(parts, TabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// View renders the bordered panel
func (p *Panel) View(focused bool) string {
	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}
	inner := GetViewContext().InnerWidth(p.width)
	content := fitLine(p.TabRow(), inner) + "\n" + p.viewport.View()
	return style.Width(p.width).Height(p.height).Render(content)
}
