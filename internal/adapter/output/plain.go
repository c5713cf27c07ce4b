package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/termdesk/internal/model"
)

// PlainFormatter formats windows as plain text, one per line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter. An invalid custom
// template is ignored in favour of the default layout.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes windows as plain text.
func (f *PlainFormatter) Format(w io.Writer, windows []model.Window) error {
	for i := range windows {
		if err := f.formatWindow(w, i+1, &windows[i]); err != nil {
			return err
		}
	}
	return nil
}

// templateData provides data for custom templates.
type templateData struct {
	Index  int
	Window *model.Window
	Age    string
}

func (f *PlainFormatter) formatWindow(w io.Writer, index int, win *model.Window) error {
	if f.template != nil {
		data := templateData{Index: index, Window: win, Age: win.Age()}
		if err := f.template.Execute(w, data); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	// Default format: [index] title  position  size  (age)
	var sb strings.Builder
	if f.opts.ShowIndex {
		fmt.Fprintf(&sb, "[%d] ", index)
	}
	fmt.Fprintf(&sb, "%s  %s  %s", win.Title, win.Position, win.Size)
	if f.opts.ShowAge {
		fmt.Fprintf(&sb, "  (%s)", win.Age())
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"comma": func(v int) string {
			return humanize.Comma(int64(v))
		},
		"upper": strings.ToUpper,
	}
}
