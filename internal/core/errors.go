package core

import "fmt"

// AnalyzerErrorKind classifies analyzer failures so the caller can show a
// meaningful message instead of propagating a crash.
type AnalyzerErrorKind string

const (
	// ErrNetwork covers invalid URLs, unreachable hosts and upstream
	// service failures.
	ErrNetwork AnalyzerErrorKind = "NetworkError"
	// ErrParse covers unparseable page content or model output.
	ErrParse AnalyzerErrorKind = "ParseError"
	// ErrNotFound means no recognizable food or recipe in the input.
	ErrNotFound AnalyzerErrorKind = "NotFound"
)

type AnalyzerError struct {
	Kind    AnalyzerErrorKind
	Message string // displayable to the user
	Err     error
}

func (e *AnalyzerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalyzerError) Unwrap() error {
	return e.Err
}

func networkError(message string, err error) *AnalyzerError {
	return &AnalyzerError{Kind: ErrNetwork, Message: message, Err: err}
}

func parseError(message string, err error) *AnalyzerError {
	return &AnalyzerError{Kind: ErrParse, Message: message, Err: err}
}

func notFoundError(message string) *AnalyzerError {
	return &AnalyzerError{Kind: ErrNotFound, Message: message}
}
