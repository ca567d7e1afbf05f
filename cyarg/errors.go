package cyarg

import (
	"fmt"
	"strings"

	"github.com/bauersmatthew/cyarg/internal/fuzzy"
)

// ErrorType represents error categories for the parsing engine. Every
// error is immediately fatal to the parse; the engine never retries or
// returns partial results.
type ErrorType string

const (
	// ErrorTypeUnknownArgument means a named flag or positional slot
	// has no matching descriptor.
	ErrorTypeUnknownArgument ErrorType = "unknown_argument"
	// ErrorTypeMissingValue means a valued flag consumed the last
	// token and no value token remains.
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeInvalidValue means the declared converter rejected the
	// raw token text.
	ErrorTypeInvalidValue ErrorType = "invalid_value"
	// ErrorTypeMissingRequired means a non-optional argument was
	// absent after the scan completed.
	ErrorTypeMissingRequired ErrorType = "missing_required"
)

// ParseError is the error type surfaced by Process and ProcessArgs.
type ParseError struct {
	Type       ErrorType
	Message    string
	Arg        string // display form of the offending argument ("-o", "--count", "#3")
	Value      string // raw token text for invalid-value errors
	Suggestion string // closest known name for unknown-argument errors

	// Suggestions holds further close names, best first, when an
	// ErrorHandler with MaxSuggestions > 1 processed the error.
	Suggestions []string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message.
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// ErrorHandler formats parse errors for terminal display, optionally
// decorating unknown-argument errors with fuzzy-matched suggestions.
type ErrorHandler struct {
	suggestNames   bool
	maxDistance    int
	maxSuggestions int
	customHandlers map[ErrorType]func(*ParseError) *ParseError
}

// NewErrorHandler creates a new error handler with defaults.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		suggestNames:   false, // Disabled by default - user must opt-in
		maxDistance:    2,
		maxSuggestions: 1,
		customHandlers: make(map[ErrorType]func(*ParseError) *ParseError),
	}
}

// SuggestNames enables/disables "did you mean" suggestions.
func (eh *ErrorHandler) SuggestNames(enabled bool) *ErrorHandler {
	eh.suggestNames = enabled
	return eh
}

// MaxDistance sets the maximum edit distance for suggestions.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// MaxSuggestions sets how many close names Process attaches to an
// unknown-argument error.
func (eh *ErrorHandler) MaxSuggestions(n int) *ErrorHandler {
	eh.maxSuggestions = n
	return eh
}

// Handle registers a custom handler for a specific error type.
func (eh *ErrorHandler) Handle(typ ErrorType, handler func(*ParseError) *ParseError) *ErrorHandler {
	eh.customHandlers[typ] = handler
	return eh
}

// Process applies custom handlers and, for unknown-argument errors,
// recomputes the suggestion against the given descriptor list.
func (eh *ErrorHandler) Process(err *ParseError, descs []*Descriptor) *ParseError {
	if handler, exists := eh.customHandlers[err.Type]; exists {
		err = handler(err)
	}

	if err.Type == ErrorTypeUnknownArgument && eh.suggestNames {
		input := strings.TrimLeft(err.Arg, "-")
		if eh.maxSuggestions > 1 {
			err.Suggestions = fuzzy.FindSuggestions(input, descriptorNames(descs), eh.maxDistance, eh.maxSuggestions)
			if len(err.Suggestions) > 0 {
				err.Suggestion = err.Suggestions[0]
			}
		} else if err.Suggestion == "" {
			err.Suggestion = fuzzy.FindBestName(input, descriptorNames(descs), eh.maxDistance)
		}
	}

	return err
}

// Format builds the terminal error message with any suggestion line.
func (eh *ErrorHandler) Format(err *ParseError) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Error: %s", err.Message))
	if !eh.suggestNames {
		return builder.String()
	}

	if len(err.Suggestions) > 1 {
		names := make([]string, len(err.Suggestions))
		for i, s := range err.Suggestions {
			names[i] = "'" + dashed(s) + "'"
		}
		builder.WriteString(fmt.Sprintf("\n  Did you mean one of %s?", strings.Join(names, ", ")))
	} else if err.Suggestion != "" {
		builder.WriteString(fmt.Sprintf("\n  Did you mean '%s'?", dashed(err.Suggestion)))
	}

	return builder.String()
}

// descriptorNames collects every registered argument name, synonyms
// included, for fuzzy matching.
func descriptorNames(descs []*Descriptor) []string {
	names := make([]string, 0, len(descs))
	for _, d := range descs {
		names = append(names, d.Names...)
	}
	return names
}
