package store

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLen is the longest accepted task title, in characters.
const MaxTitleLen = 10

// ValidateTitle trims raw and returns it if it is a legal task title.
// Length is counted in runes after trimming.
func ValidateTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Field: "task title", Value: raw, Err: ErrTitleRequired}
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return "", &ValidationError{Field: "task title", Value: raw, Err: ErrTitleTooLong}
	}
	return trimmed, nil
}

func validateListTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Field: "list title", Value: raw, Err: ErrListTitleRequired}
	}
	return trimmed, nil
}

// HintKind classifies in-progress input for the add-task field.
type HintKind int

const (
	HintEmpty HintKind = iota
	HintRemaining
	HintTooLong
)

// Hint is the live feedback shown under the add-task input.
type Hint struct {
	Kind      HintKind
	Remaining int
}

// CanSubmit reports whether the add action should be enabled.
func (h Hint) CanSubmit() bool { return h.Kind == HintRemaining }

func (h Hint) String() string {
	switch h.Kind {
	case HintTooLong:
		return "Task title is too long"
	case HintRemaining:
		return fmt.Sprintf("There are %d characters to enter", h.Remaining)
	default:
		return fmt.Sprintf("Max length task title is %d characters", MaxTitleLen)
	}
}

// TitleHint mirrors ValidateTitle for input that has not been submitted yet.
func TitleHint(raw string) Hint {
	trimmed := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n > MaxTitleLen:
		return Hint{Kind: HintTooLong}
	case n == 0:
		return Hint{Kind: HintEmpty}
	default:
		return Hint{Kind: HintRemaining, Remaining: MaxTitleLen - n}
	}
}
