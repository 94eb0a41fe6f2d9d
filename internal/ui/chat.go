package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/assistant"
)

// chatInputHeight is the input box including its border
const chatInputHeight = 3

// Chat is the assistant sidebar: the transcript above a one-line input.
type Chat struct {
	viewport viewport.Model
	input    textinput.Model
	messages []assistant.Message
	loading  bool
	focused  bool
	width    int
	height   int
	fileName string
}

// NewChat creates an empty chat view
func NewChat() *Chat {
	ti := textinput.New()
	ti.Placeholder = "Ask Gemini..."
	ti.CharLimit = ChatCharLimit
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{viewport: vp, input: ti}
	c.updateContent()
	return c
}

// SetSize sets the chat dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.SetWidth(width)
	c.viewport.SetHeight(max(height-chatInputHeight, 1))
	c.input.SetWidth(max(width-4, 1))
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// GetInput returns the input text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// SetInput replaces the input text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ClearInput clears the input
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetContextFile names the file sent along with questions
func (c *Chat) SetContextFile(name string) {
	c.fileName = name
}

// SetTranscript replaces the rendered messages and scrolls to the end
func (c *Chat) SetTranscript(messages []assistant.Message, loading bool) {
	c.messages = messages
	c.loading = loading
	c.updateContent()
	c.viewport.GotoBottom()
}

// IsWaiting reports whether the loading line is shown
func (c *Chat) IsWaiting() bool {
	return c.loading
}

func (c *Chat) wrapWidth() int {
	if c.width <= 0 {
		return DefaultWrapWidth
	}
	return c.width
}

func (c *Chat) updateContent() {
	width := c.wrapWidth()
	var sb strings.Builder
	if len(c.messages) == 0 && !c.loading {
		sb.WriteString(MutedStyle.Render(wrapText("Ask about the open file. Answers are written in markdown.", width)))
	}
	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch msg.Role {
		case assistant.RoleUser:
			sb.WriteString(ChatUserStyle.Render("You"))
			sb.WriteString("\n")
			sb.WriteString(wrapText(msg.Content, width))
		default:
			sb.WriteString(ChatAssistantStyle.Render("Gemini"))
			sb.WriteString("\n")
			if msg.Content == assistant.ErrorText {
				sb.WriteString(StatusErrorStyle.Render(msg.Content))
			} else {
				sb.WriteString(renderMarkdown(msg.Content, width))
			}
		}
	}
	if c.loading {
		if len(c.messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(StatusLoadingStyle.Render(assistant.LoadingText))
	}
	c.viewport.SetContent(sb.String())
}

// Update forwards keys to the input; page keys scroll the transcript
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case "pgup", "pgdown", "ctrl+up", "ctrl+down":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		if !c.focused {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the transcript and the input box
func (c *Chat) View() string {
	header := ""
	if c.fileName != "" {
		header = MutedStyle.Render(fitLine("context: "+c.fileName, c.width)) + "\n"
	}
	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(max(c.width, 4)).Render(c.input.View())
	transcript := c.viewport.View()
	if header != "" {
		transcript = clipLines(header+transcript, max(c.height-chatInputHeight, 1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, transcript, inputArea)
}
