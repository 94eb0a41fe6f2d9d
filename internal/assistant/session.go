// Package assistant implements the chat side panel: a transcript with a
// single in-flight request at a time, and a client for the generative
// language API that answers it.
package assistant

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zhubert/facade/internal/logger"
)

// Role identifies who authored a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role
	Content string
}

// Fixed transcript texts.
const (
	SystemInstruction = "You are a helpful coding assistant integrated into a VS Code clone. " +
		"Provide concise, accurate code explanations and suggestions. Use markdown for code blocks."
	EmptyResponseText = "Sorry, I could not generate a response."
	ErrorText         = "Error connecting to Gemini API."
	LoadingText       = "Gemini is thinking..."
)

// File is the part of the active editor file sent as context.
type File struct {
	Name    string
	Content string
}

// Request is one outbound call to the language model.
type Request struct {
	Generation        uint64
	Prompt            string
	SystemInstruction string
}

// Response is the outcome of a Request.
type Response struct {
	Generation uint64
	Text       string
	Err        error
}

// Session holds the chat transcript and the loading flag. At most one
// request is in flight; submissions made while loading are dropped.
//
// Session is not safe for concurrent use. The Bubble Tea model owns it
// and delivers responses back through Update.
type Session struct {
	transcript []Message
	input      string
	loading    bool
	generation uint64
	log        *slog.Logger
}

// NewSession creates an empty chat session.
func NewSession() *Session {
	return &Session{log: logger.WithComponent("assistant")}
}

// Transcript returns a copy of the messages in chronological order.
func (s *Session) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Input returns the pending input text.
func (s *Session) Input() string { return s.input }

// SetInput replaces the pending input text.
func (s *Session) SetInput(text string) { s.input = text }

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool { return s.loading }

// Generation returns the id of the most recent request.
func (s *Session) Generation() uint64 { return s.generation }

// Submit starts a request for text. It is rejected when text is blank or
// a request is already in flight. On success the user message is
// appended, the input cleared and loading set. active, if non-nil, is
// prepended to the prompt as context.
func (s *Session) Submit(text string, active *File) (Request, bool) {
	if strings.TrimSpace(text) == "" || s.loading {
		return Request{}, false
	}

	s.transcript = append(s.transcript, Message{Role: RoleUser, Content: text})
	s.input = ""
	s.loading = true
	s.generation++

	s.log.Info("request submitted", "generation", s.generation, "with_context", active != nil)
	return Request{
		Generation:        s.generation,
		Prompt:            BuildPrompt(text, active),
		SystemInstruction: SystemInstruction,
	}, true
}

// Complete applies a response: the returned text, a fallback for an
// empty answer, or the fixed error text. Loading is cleared either way.
// Responses are applied even if the user has navigated elsewhere since
// submitting. Reports false for a response that does not belong to the
// in-flight request.
func (s *Session) Complete(resp Response) bool {
	if !s.loading || resp.Generation != s.generation {
		s.log.Warn("dropping unexpected response", "generation", resp.Generation, "current", s.generation)
		return false
	}

	text := resp.Text
	switch {
	case resp.Err != nil:
		s.log.Error("request failed", "generation", resp.Generation, "error", resp.Err)
		text = ErrorText
	case strings.TrimSpace(text) == "":
		text = EmptyResponseText
	}

	s.transcript = append(s.transcript, Message{Role: RoleAssistant, Content: text})
	s.loading = false
	return true
}

// BuildPrompt prefixes text with the active file's name and content.
func BuildPrompt(text string, active *File) string {
	if active == nil {
		return text
	}
	return fmt.Sprintf("Current file: %s\nContent:\n%s\n\n", active.Name, active.Content) + text
}
