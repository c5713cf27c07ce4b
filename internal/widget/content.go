package widget

// Content is whatever a window shows below its title bar. The window
// never inspects it; it only asks for a view sized to the content region.
type Content interface {
	View(width, height int) string
}

// Text is static content.
type Text string

// View returns the text unchanged; the window clips it.
func (t Text) View(width, height int) string {
	return string(t)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(width, height int) string

// View calls f.
func (f ContentFunc) View(width, height int) string {
	return f(width, height)
}
