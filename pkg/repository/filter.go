package repository

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Operator is a comparison supported by every adapter.
type Operator string

const (
	OpEq Operator = "eq"
	OpIn Operator = "in"
)

// Filter is a single (field, operator, value) condition. Filters passed together are ANDed.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Eq matches documents whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// In matches documents whose field equals any of values.
func In[V any](field string, values []V) Filter {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Filter{Field: field, Op: OpIn, Value: vs}
}

// Validate rejects filters no adapter can evaluate.
func (f Filter) Validate() error {
	if f.Field == "" {
		return fmt.Errorf("%w: filter field is empty", ErrInvalidArgument)
	}
	switch f.Op {
	case OpEq:
		return nil
	case OpIn:
		if _, ok := f.Value.([]any); !ok {
			return fmt.Errorf("%w: filter %s: in expects a list", ErrInvalidArgument, f.Field)
		}
		return nil
	default:
		return fmt.Errorf("%w: filter %s: unknown operator %q", ErrInvalidArgument, f.Field, f.Op)
	}
}

// Match reports whether the JSON-shaped document satisfies f.
func (f Filter) Match(doc map[string]any) bool {
	got, ok := doc[f.Field]
	if !ok {
		return false
	}
	switch f.Op {
	case OpEq:
		return reflect.DeepEqual(got, Normalize(f.Value))
	case OpIn:
		values, _ := f.Value.([]any)
		for _, v := range values {
			if reflect.DeepEqual(got, Normalize(v)) {
				return true
			}
		}
	}
	return false
}

// MatchAll reports whether doc satisfies every filter.
func MatchAll(doc map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(doc) {
			return false
		}
	}
	return true
}

// ValidateFilters validates each filter in turn.
func ValidateFilters(filters []Filter) error {
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize converts v to the shape encoding/json would decode it into,
// so a filter value compares equal to the same value read back from a document.
func Normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}
