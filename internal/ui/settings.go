package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/config"
)

// SettingsMode selects how the settings screen presents the config.
type SettingsMode int

const (
	SettingsUI SettingsMode = iota
	SettingsJSON
)

// Settings is the settings editor: a huh form over the editor fields and
// a read-only JSON view of the whole config. Edits are applied to the
// in-memory config only.
type Settings struct {
	cfg   *config.Config
	mode  SettingsMode
	form  *huh.Form
	width int

	theme             string
	autoSave          string
	fontFamily        string
	fontSize          string
	autoGuessEncoding bool
	terminalFontSize  string
}

// NewSettings creates the settings screen bound to cfg
func NewSettings(cfg *config.Config) *Settings {
	s := &Settings{cfg: cfg, width: DefaultWrapWidth}
	s.Reset()
	return s
}

// Reset reloads the form values from the config and returns to the form
func (s *Settings) Reset() {
	e := s.cfg.GetEditor()
	s.mode = SettingsUI
	s.theme = e.ColorTheme
	s.autoSave = e.AutoSave
	s.fontFamily = e.FontFamily
	s.fontSize = strconv.Itoa(e.FontSize)
	s.autoGuessEncoding = e.AutoGuessEncoding
	s.terminalFontSize = strconv.Itoa(e.TerminalFontSize)
	s.buildForm()
}

func (s *Settings) buildForm() {
	themeOptions := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}
	saveOptions := make([]huh.Option[string], 0, len(config.AutoSaveModes))
	for _, mode := range config.AutoSaveModes {
		saveOptions = append(saveOptions, huh.NewOption(mode, mode))
	}

	editorGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Workbench: Color Theme").
			Description("Specifies the color theme used in the workbench.").
			Options(themeOptions...).
			Value(&s.theme),
		huh.NewSelect[string]().
			Title("Editor: Auto Save").
			Description("Controls auto save of dirty files.").
			Options(saveOptions...).
			Value(&s.autoSave),
		huh.NewInput().
			Title("Editor: Font Family").
			Description("Controls the font family.").
			Value(&s.fontFamily),
		huh.NewInput().
			Title("Editor: Font Size").
			Description("Controls the font size in pixels.").
			CharLimit(3).
			Validate(validateSize).
			Value(&s.fontSize),
	).Title("Text Editor")

	filesGroup := huh.NewGroup(
		huh.NewConfirm().
			Title("Files: Auto Guess Encoding").
			Description("Guess the character set encoding when opening files.").
			Affirmative("On").
			Negative("Off").
			Value(&s.autoGuessEncoding),
		huh.NewInput().
			Title("Terminal: Font Size").
			Description("Controls the font size in pixels of the terminal.").
			CharLimit(3).
			Validate(validateSize).
			Value(&s.terminalFontSize),
	).Title("Files and Terminal")

	s.form = huh.NewForm(editorGroup, filesGroup).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(s.formWidth()).
		WithLayout(huh.LayoutStack)
	s.form.Init()
}

func validateSize(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func (s *Settings) formWidth() int {
	return max(min(s.width-4, ModalWidth+20), 20)
}

// SetWidth sets the available width
func (s *Settings) SetWidth(width int) {
	s.width = width
	s.form.WithWidth(s.formWidth())
}

// Mode returns the current presentation
func (s *Settings) Mode() SettingsMode {
	return s.mode
}

// ToggleMode switches between the form and the JSON view
func (s *Settings) ToggleMode() {
	if s.mode == SettingsUI {
		s.mode = SettingsJSON
	} else {
		s.mode = SettingsUI
	}
}

// Values returns the editor fields as currently entered. Sizes that do
// not parse keep the configured value.
func (s *Settings) Values() config.Editor {
	current := s.cfg.GetEditor()
	e := config.Editor{
		AutoSave:          s.autoSave,
		FontFamily:        s.fontFamily,
		FontSize:          current.FontSize,
		AutoGuessEncoding: s.autoGuessEncoding,
		ColorTheme:        s.theme,
		TerminalFontSize:  current.TerminalFontSize,
	}
	if validateSize(s.fontSize) == nil {
		e.FontSize, _ = strconv.Atoi(strings.TrimSpace(s.fontSize))
	}
	if validateSize(s.terminalFontSize) == nil {
		e.TerminalFontSize, _ = strconv.Atoi(strings.TrimSpace(s.terminalFontSize))
	}
	return e
}

// Apply writes the entered values to the config and reports whether the
// color theme changed.
func (s *Settings) Apply() (themeChanged bool) {
	before := s.cfg.GetEditor()
	after := s.Values()
	if before == after {
		return false
	}
	s.cfg.SetEditor(after)
	return before.ColorTheme != after.ColorTheme
}

// Update passes keys to the form while the form is shown
func (s *Settings) Update(msg tea.Msg) (*Settings, tea.Cmd) {
	if s.mode != SettingsUI {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// View renders the header with the mode switch and the current mode
func (s *Settings) View(width, height int) string {
	tab := func(label string, active bool) string {
		if active {
			return TabActiveStyle.Render(" " + label + " ")
		}
		return TabStyle.Render(" " + label + " ")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		ModalTitleStyle.Render("Settings")+"  ",
		tab("User", s.mode == SettingsUI),
		tab("JSON", s.mode == SettingsJSON),
	)
	help := ModalHelpStyle.Render("tab: next field  ctrl+j: toggle JSON  esc: close")

	var body string
	if s.mode == SettingsJSON {
		body = strings.Join(HighlightLines(s.cfg.JSON(), "json"), "\n")
	} else {
		body = s.form.View()
	}
	bodyHeight := max(height-3, 0)
	out := header + "\n" + help + "\n\n" + clipLines(body, bodyHeight)
	return lipgloss.NewStyle().Width(width).Height(height).Padding(0, 1).Render(out)
}
