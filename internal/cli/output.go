package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/gxt2/internal/convert"
	"github.com/roach88/gxt2/internal/gxt"
)

// Exit codes for CLI commands. Every failure, usage errors included,
// exits with ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Error codes reported in JSON error responses.
const (
	ErrCodeGeneric          = "E000"
	ErrCodeUsage            = "E001"
	ErrCodeOpen             = "E002"
	ErrCodeFormat           = "E003"
	ErrCodeUnknownExtension = "E004"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// UsageError reports wrong arguments. It is raised by the CLI layer only.
type UsageError struct {
	Usage  string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s\nusage: %s", e.Reason, e.Usage)
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode classifies err for JSON error responses.
func ErrorCode(err error) string {
	var (
		usage *UsageError
		open  *gxt.OpenError
		ext   *gxt.UnknownExtensionError
	)
	switch {
	case errors.As(err, &usage):
		return ErrCodeUsage
	case errors.As(err, &open):
		return ErrCodeOpen
	case gxt.IsFormatError(err):
		return ErrCodeFormat
	case errors.As(err, &ext):
		return ErrCodeUnknownExtension
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format. Text
// output prints data with its String method.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error: %s\n", message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// resultText is the text rendering of a conversion or merge.
type resultText struct {
	*convert.Result
}

func (r resultText) String() string {
	s := fmt.Sprintf("%s -> %s (%d entries", joinInputs(r.Inputs), r.Output, r.Entries)
	if r.Endian != "" {
		s += ", " + r.Endian
	}
	if r.Overridden > 0 {
		s += fmt.Sprintf(", %d overridden", r.Overridden)
	}
	return s + ")"
}

func (r resultText) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Result)
}

func joinInputs(in []string) string {
	switch len(in) {
	case 0:
		return ""
	case 1:
		return in[0]
	default:
		s := in[0]
		for _, p := range in[1:] {
			s += " + " + p
		}
		return s
	}
}
