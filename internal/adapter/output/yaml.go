package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/termdesk/internal/model"
)

// YAMLFormatter formats windows as a YAML sequence.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes windows as YAML.
func (f *YAMLFormatter) Format(w io.Writer, windows []model.Window) error {
	if windows == nil {
		windows = []model.Window{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(windows); err != nil {
		return err
	}
	return encoder.Close()
}
