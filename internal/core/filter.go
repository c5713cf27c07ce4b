// Package core provides filtering, sorting, and lookup logic for windows.
package core

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/termdesk/internal/model"
)

// ErrInvalidFilter is wrapped by every filter parse failure.
var ErrInvalidFilter = errors.New("invalid filter")

// FilterOp represents a comparison operator.
type FilterOp string

const (
	FilterOpEqual     FilterOp = "="  // Exact match
	FilterOpNotEqual  FilterOp = "!=" // Not equal
	FilterOpContains  FilterOp = "~"  // Contains substring
	FilterOpRegex     FilterOp = "~=" // Regex match
	FilterOpGreater   FilterOp = ">"  // Greater than
	FilterOpLess      FilterOp = "<"  // Less than
	FilterOpGreaterEq FilterOp = ">=" // Greater than or equal
	FilterOpLessEq    FilterOp = "<=" // Less than or equal
)

// FilterCondition represents a single filter condition.
type FilterCondition struct {
	Field    string   // Field name: title, id, x, y, width, height, area
	Operator FilterOp // Comparison operator
	Value    string   // Value to compare against

	regex  *regexp.Regexp // Compiled regex for ~= operator
	intVal int            // Parsed value for numeric fields
}

// FilterExpr represents a compound filter expression.
// Multiple conditions are ANDed together.
type FilterExpr struct {
	Conditions []FilterCondition
}

// ParseFilter parses a filter expression string into a FilterExpr.
// Format: "field=value,field2~value2,field3>value3"
// Multiple conditions are comma-separated and ANDed together.
//
// Supported fields: title, id, x, y, width, height, area
// Supported operators: = (equal), != (not equal), ~ (contains), ~= (regex), >, <, >=, <=
//
// Examples:
//   - "title=Test 1" - exact title match
//   - "title~test" - title contains "test", ignoring case
//   - "x<0" - window hangs off the left edge
//   - "width>=40,height>=10" - at least 40x10
func ParseFilter(expr string) (*FilterExpr, error) {
	filter := &FilterExpr{}
	if expr == "" {
		return filter, nil
	}

	for part := range strings.SplitSeq(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		cond, err := parseCondition(part)
		if err != nil {
			return nil, err
		}
		filter.Conditions = append(filter.Conditions, cond)
	}

	return filter, nil
}

// parseCondition parses a single condition like "title=Notes" or "x>=10".
func parseCondition(s string) (FilterCondition, error) {
	// Longest operators first so "!=" is not read as "=".
	operators := []FilterOp{
		FilterOpNotEqual,
		FilterOpGreaterEq,
		FilterOpLessEq,
		FilterOpRegex,
		FilterOpEqual,
		FilterOpContains,
		FilterOpGreater,
		FilterOpLess,
	}

	for _, op := range operators {
		idx := strings.Index(s, string(op))
		if idx > 0 {
			cond := FilterCondition{
				Field:    strings.ToLower(strings.TrimSpace(s[:idx])),
				Operator: op,
				Value:    strings.TrimSpace(s[idx+len(op):]),
			}
			if err := cond.init(); err != nil {
				return FilterCondition{}, err
			}
			return cond, nil
		}
	}

	return FilterCondition{}, fmt.Errorf("%w: %s (missing operator)", ErrInvalidFilter, s)
}

// init normalises the field name and pre-parses the value.
func (c *FilterCondition) init() error {
	switch c.Field {
	case "title", "name":
		c.Field = "title"
	case "id":
	case "x", "y", "width", "height", "area":
		switch c.Operator {
		case FilterOpContains, FilterOpRegex:
			return fmt.Errorf("%w: operator %s does not apply to %s", ErrInvalidFilter, c.Operator, c.Field)
		}
		v, err := strconv.Atoi(c.Value)
		if err != nil {
			return fmt.Errorf("%w: %s needs a number, got %q", ErrInvalidFilter, c.Field, c.Value)
		}
		c.intVal = v
	case "w":
		c.Field = "width"
		return c.init()
	case "h":
		c.Field = "height"
		return c.init()
	default:
		return fmt.Errorf("%w: unknown field %s", ErrInvalidFilter, c.Field)
	}

	if c.Operator == FilterOpRegex {
		re, err := regexp.Compile(c.Value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		c.regex = re
	}

	return nil
}

// Match tests if a window matches the filter expression.
// All conditions must match (AND logic).
func (f *FilterExpr) Match(w model.Window) bool {
	for _, cond := range f.Conditions {
		if !cond.Match(w) {
			return false
		}
	}
	return true
}

// Match tests if a window matches this single condition.
func (c *FilterCondition) Match(w model.Window) bool {
	switch c.Field {
	case "title":
		return c.matchString(w.Title)
	case "id":
		return c.matchString(w.ID)
	case "x":
		return c.matchInt(w.Position.X)
	case "y":
		return c.matchInt(w.Position.Y)
	case "width":
		return c.matchInt(w.Size.Width)
	case "height":
		return c.matchInt(w.Size.Height)
	case "area":
		return c.matchInt(w.Size.Width * w.Size.Height)
	default:
		return false
	}
}

// matchString matches a string field.
func (c *FilterCondition) matchString(fieldValue string) bool {
	switch c.Operator {
	case FilterOpEqual:
		return fieldValue == c.Value
	case FilterOpNotEqual:
		return fieldValue != c.Value
	case FilterOpContains:
		return strings.Contains(strings.ToLower(fieldValue), strings.ToLower(c.Value))
	case FilterOpRegex:
		return c.regex != nil && c.regex.MatchString(fieldValue)
	default:
		return false
	}
}

// matchInt matches an integer field with numeric comparison.
func (c *FilterCondition) matchInt(fieldValue int) bool {
	switch c.Operator {
	case FilterOpEqual:
		return fieldValue == c.intVal
	case FilterOpNotEqual:
		return fieldValue != c.intVal
	case FilterOpGreater:
		return fieldValue > c.intVal
	case FilterOpLess:
		return fieldValue < c.intVal
	case FilterOpGreaterEq:
		return fieldValue >= c.intVal
	case FilterOpLessEq:
		return fieldValue <= c.intVal
	default:
		return false
	}
}

// Filter returns the windows matching expr, keeping their order, capped at
// limit results when limit is positive.
func Filter(windows []model.Window, expr *FilterExpr, limit int) []model.Window {
	result := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		if expr == nil || expr.Match(w) {
			result = append(result, w)
		}
	}

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
