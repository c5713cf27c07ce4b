package desktop

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/widget"
)

// sessionContent shows facts about the running desktop.
func sessionContent(started time.Time, windows int, now func() time.Time) widget.ContentFunc {
	return func(width, height int) string {
		lines := []string{
			"termdesk session",
			"started " + humanize.RelTime(started, now(), "ago", "from now"),
			fmt.Sprintf("%s open", pluralWindows(windows)),
			fmt.Sprintf("region %dx%d", width, height),
		}
		return strings.Join(lines, "\n")
	}
}

func pluralWindows(n int) string {
	if n == 1 {
		return "1 window"
	}
	return humanize.Comma(int64(n)) + " windows"
}

// newContent builds the content a configured window hosts.
func newContent(wc config.WindowConfig, session widget.Content) widget.Content {
	switch wc.ContentKind() {
	case config.ContentSession:
		return session
	default:
		return widget.Text(wc.Content)
	}
}
