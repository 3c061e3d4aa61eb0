package filter

import (
	"regexp"
	"strings"

	"github.com/poiesic/nyaya/core"
)

// Operator selects the predicate a Filter applies to a metadata field.
type Operator string

const (
	// OpEquals matches when the field equals the value (case-insensitive).
	OpEquals Operator = "eq"
	// OpIn matches when the field is a member of a list value.
	OpIn Operator = "in"
	// OpRange matches when the numeric field falls inside a Range value.
	OpRange Operator = "range"
	// OpContains matches when the value is a substring of the field.
	OpContains Operator = "contains"
	// OpRegex matches the field against a case-insensitive regular expression.
	OpRegex Operator = "regex"
)

// Range bounds a numeric range filter. Nil bounds are unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Filter is a single metadata predicate with an additive relevance boost.
// Field is dot-addressable into nested document metadata.
type Filter struct {
	Field    string
	Operator Operator
	Value    any
	Boost    float64
}

// Matches evaluates the filter's predicate against document metadata.
// Missing fields, unknown operators, and invalid regex patterns match nothing.
func (f Filter) Matches(meta core.Metadata) bool {
	fieldValue := meta.Lookup(f.Field)
	if fieldValue == nil {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return strings.EqualFold(core.AsString(fieldValue), core.AsString(f.Value))

	case OpIn:
		if values, ok := f.Value.([]string); ok {
			field := strings.ToLower(core.AsString(fieldValue))
			for _, v := range values {
				if field == strings.ToLower(v) {
					return true
				}
			}
			return false
		}
		return strings.EqualFold(core.AsString(fieldValue), core.AsString(f.Value))

	case OpContains:
		return strings.Contains(
			strings.ToLower(core.AsString(fieldValue)),
			strings.ToLower(core.AsString(f.Value)),
		)

	case OpRange:
		r, ok := f.Value.(Range)
		if !ok {
			return false
		}
		n, ok := core.AsFloat(fieldValue)
		if !ok {
			return false
		}
		if r.Min != nil && n < *r.Min {
			return false
		}
		if r.Max != nil && n > *r.Max {
			return false
		}
		return true

	case OpRegex:
		re, err := regexp.Compile("(?i)" + core.AsString(f.Value))
		if err != nil {
			return false
		}
		return re.MatchString(core.AsString(fieldValue))
	}

	return false
}
