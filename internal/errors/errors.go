// Package errors provides the structured error type used across facade.
//
// Every error built here records the operation that failed, a Kind that
// callers switch on (a clipboard I/O failure becomes a toast, a seed
// failure aborts startup), and optionally the file it concerns.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op names an operation, usually "package.Function".
type Op string

// Path is the file an error concerns.
type Path string

// Kind is the coarse category of an error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindConfig
	KindSeed
	KindAssistant
	KindTimeout
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindInvalid:   "invalid value",
	KindIO:        "I/O",
	KindConfig:    "settings",
	KindSeed:      "seed data",
	KindAssistant: "assistant",
	KindTimeout:   "timeout",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Error is a failure annotated with where it happened.
type Error struct {
	Op   Op
	Kind Kind
	Path Path
	Err  error
}

// Error renders "op: path: cause", omitting empty parts.
func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, string(e.Op))
	}
	if e.Path != "" {
		parts = append(parts, string(e.Path))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.Err }

// E builds an *Error from its arguments, picked by type: Op, Kind and
// Path set the matching field, a string is a message and an error is
// the cause. A message and a cause together become "message: cause".
func E(args ...any) error {
	e := &Error{}
	var msg string
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case Path:
			e.Path = a
		case string:
			msg = a
		case error:
			e.Err = a
		default:
			panic(fmt.Sprintf("errors.E: unexpected argument %T", arg))
		}
	}
	switch {
	case msg != "" && e.Err != nil:
		e.Err = fmt.Errorf("%s: %w", msg, e.Err)
	case e.Err == nil:
		e.Err = errors.New(msg)
	}
	return e
}

// Is reports whether the outermost *Error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetKind returns the kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, Path(path), "failed to load settings", err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

func SeedLoadFailed(path string, err error) error {
	return E(Op("seed.Load"), KindSeed, Path(path), "failed to load seed data", err)
}

func SeedInvalid(reason string) error {
	return E(Op("seed.Validate"), KindInvalid, reason)
}

func AssistantNotConfigured(envVar string) error {
	return E(Op("assistant.NewClient"), KindConfig, "no API key found in $"+envVar)
}

func AssistantRequestFailed(model string, err error) error {
	return E(Op("assistant.Generate"), KindAssistant, "request to "+model+" failed", err)
}

func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindIO, "system clipboard unavailable", err)
}
