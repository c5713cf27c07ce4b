package core

import (
	"sort"
	"strings"

	"github.com/jmylchreest/termdesk/internal/model"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByOrder   SortField = "order" // paint order, as configured
	SortByTitle   SortField = "title"
	SortByX       SortField = "x"
	SortByY       SortField = "y"
	SortByArea    SortField = "area"
	SortByCreated SortField = "created"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField // Field to sort by
	Order SortOrder // Sort order (asc/desc)
}

// DefaultSortOptions returns default sort options (paint order, bottom first).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByOrder,
		Order: SortAsc,
	}
}

// Sort sorts windows in place based on the provided options.
func Sort(windows []model.Window, opts SortOptions) {
	if len(windows) == 0 {
		return
	}

	if opts.Field == SortByOrder || opts.Field == "" {
		if opts.Order == SortDesc {
			for i, j := 0, len(windows)-1; i < j; i, j = i+1, j-1 {
				windows[i], windows[j] = windows[j], windows[i]
			}
		}
		return
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if opts.Order == SortDesc {
			a, b = b, a
		}

		switch opts.Field {
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortByX:
			return a.Position.X < b.Position.X
		case SortByY:
			return a.Position.Y < b.Position.Y
		case SortByArea:
			return a.Size.Width*a.Size.Height < b.Size.Width*b.Size.Height
		case SortByCreated:
			return a.CreatedAt < b.CreatedAt
		default:
			return false
		}
	})
}

// ParseSortField parses a sort field string. Unknown values fall back to
// paint order.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "name", "t":
		return SortByTitle
	case "x":
		return SortByX
	case "y":
		return SortByY
	case "area", "size", "a":
		return SortByArea
	case "created", "age", "c":
		return SortByCreated
	default:
		return SortByOrder
	}
}

// ParseSortOrder parses a sort order string. Unknown values fall back to
// ascending.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending", "d":
		return SortDesc
	default:
		return SortAsc
	}
}
