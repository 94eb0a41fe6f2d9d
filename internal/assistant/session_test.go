package assistant

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/facade/internal/errors"
)

// fakeClient returns a canned answer and records the request it saw.
type fakeClient struct {
	text  string
	err   error
	delay time.Duration
	got   []Request
}

func (f *fakeClient) Generate(ctx context.Context, req Request) (string, error) {
	f.got = append(f.got, req)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestSubmit_BlankIsIgnored(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		s := NewSession()
		s.SetInput(text)

		if _, ok := s.Submit(text, nil); ok {
			t.Errorf("Submit(%q) should be rejected", text)
		}
		if len(s.Transcript()) != 0 || s.Loading() {
			t.Errorf("Submit(%q) changed state", text)
		}
		if s.Input() != text {
			t.Errorf("input should be left alone, got %q", s.Input())
		}
	}
}

func TestSubmit_AppendsUserMessage(t *testing.T) {
	s := NewSession()
	s.SetInput("explain this")

	req, ok := s.Submit("explain this", nil)
	if !ok {
		t.Fatal("submit should succeed")
	}

	if !s.Loading() {
		t.Error("loading should be set")
	}
	if s.Input() != "" {
		t.Error("input should be cleared")
	}
	tr := s.Transcript()
	if len(tr) != 1 || tr[0] != (Message{Role: RoleUser, Content: "explain this"}) {
		t.Errorf("transcript = %+v", tr)
	}
	if req.Prompt != "explain this" {
		t.Errorf("prompt = %q", req.Prompt)
	}
	if req.SystemInstruction != SystemInstruction {
		t.Error("system instruction missing")
	}
	if req.Generation != 1 {
		t.Errorf("generation = %d, want 1", req.Generation)
	}
}

func TestSubmit_ContextPreamble(t *testing.T) {
	s := NewSession()
	req, _ := s.Submit("what does this do?", &File{Name: "App.tsx", Content: "export default App;"})

	want := "Current file: App.tsx\nContent:\nexport default App;\n\nwhat does this do?"
	if req.Prompt != want {
		t.Errorf("prompt = %q, want %q", req.Prompt, want)
	}
}

func TestSubmit_DroppedWhileLoading(t *testing.T) {
	s := NewSession()
	s.Submit("first", nil)

	if _, ok := s.Submit("second", nil); ok {
		t.Error("second submit should be dropped while loading")
	}
	if len(s.Transcript()) != 1 {
		t.Errorf("transcript = %+v", s.Transcript())
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{"text", Response{Text: "Use `useState`."}, "Use `useState`."},
		{"empty", Response{Text: ""}, EmptyResponseText},
		{"whitespace", Response{Text: "  \n"}, EmptyResponseText},
		{"error", Response{Err: stderrors.New("boom")}, ErrorText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			req, _ := s.Submit("hi", nil)
			tt.resp.Generation = req.Generation

			if !s.Complete(tt.resp) {
				t.Fatal("complete should apply")
			}

			if s.Loading() {
				t.Error("loading should be cleared")
			}
			tr := s.Transcript()
			if len(tr) != 2 {
				t.Fatalf("transcript len = %d, want 2", len(tr))
			}
			if tr[1] != (Message{Role: RoleAssistant, Content: tt.want}) {
				t.Errorf("assistant message = %+v, want %q", tr[1], tt.want)
			}
		})
	}
}

func TestComplete_WithoutRequestIsIgnored(t *testing.T) {
	s := NewSession()
	if s.Complete(Response{Generation: 1, Text: "stray"}) {
		t.Error("a response with nothing in flight should be ignored")
	}
	if len(s.Transcript()) != 0 {
		t.Error("transcript changed")
	}
}

func TestComplete_LateResponseStillApplies(t *testing.T) {
	// Navigation happens outside the session; a response that arrives
	// afterwards is still appended.
	s := NewSession()
	req, _ := s.Submit("hi", nil)

	if !s.Complete(Response{Generation: req.Generation, Text: "late answer"}) {
		t.Fatal("late response should apply")
	}
	if got := s.Transcript()[1].Content; got != "late answer" {
		t.Errorf("content = %q", got)
	}

	// A new submission is accepted once the previous one landed.
	if _, ok := s.Submit("again", nil); !ok {
		t.Error("submit after completion should succeed")
	}
}

func TestRun(t *testing.T) {
	client := &fakeClient{text: "answer"}
	req := Request{Generation: 7, Prompt: "p", SystemInstruction: SystemInstruction}

	resp := Run(context.Background(), client, req, time.Second)

	if resp.Generation != 7 || resp.Text != "answer" || resp.Err != nil {
		t.Errorf("resp = %+v", resp)
	}
	if len(client.got) != 1 || client.got[0].Prompt != "p" {
		t.Errorf("client saw %+v", client.got)
	}
}

func TestRun_Timeout(t *testing.T) {
	client := &fakeClient{text: "too slow", delay: time.Second}

	resp := Run(context.Background(), client, Request{Generation: 1}, 10*time.Millisecond)

	if resp.Err == nil {
		t.Fatal("expected a timeout error")
	}
	if !errors.Is(resp.Err, errors.KindTimeout) {
		t.Errorf("kind = %v, want timeout", errors.GetKind(resp.Err))
	}
}

func TestUnconfigured(t *testing.T) {
	s := NewSession()
	req, _ := s.Submit("hi", nil)

	resp := Run(context.Background(), Unconfigured{Err: errors.AssistantNotConfigured("GEMINI_API_KEY")}, req, 0)
	s.Complete(resp)

	if got := s.Transcript()[1].Content; got != ErrorText {
		t.Errorf("content = %q, want %q", got, ErrorText)
	}
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	t.Setenv("FACADE_TEST_NO_KEY", "")

	_, err := NewGeminiClient(context.Background(), "FACADE_TEST_NO_KEY", "")
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("kind = %v, want config", errors.GetKind(err))
	}
	if !strings.Contains(err.Error(), "FACADE_TEST_NO_KEY") {
		t.Errorf("error should name the variable: %v", err)
	}
}
