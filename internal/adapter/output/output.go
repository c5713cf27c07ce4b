// Package output provides output formatters for window listings.
package output

import (
	"io"

	"github.com/jmylchreest/termdesk/internal/model"
)

// Formatter formats windows for output.
type Formatter interface {
	// Format writes formatted windows to the writer.
	Format(w io.Writer, windows []model.Window) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatIDs   FormatType = "ids"
)

// FormatTypes lists every supported format.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML, FormatIDs}

// NewFormatter creates a formatter for the specified format type.
// Unknown formats fall back to plain.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatIDs:
		return NewIDsFormatter()
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom text/template for plain format
	ShowIndex bool   // Show 1-based index prefix
	ShowAge   bool   // Show how long ago the window was created
}

// DefaultFormatterOptions returns the defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
	}
}
