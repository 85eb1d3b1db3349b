package repository

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ValidateEntity rejects an unset item or one without an identifier.
func ValidateEntity[T Entity](item T) error {
	v := reflect.ValueOf(item)
	if !v.IsValid() || v.IsZero() {
		return fmt.Errorf("%w: entity is empty", ErrInvalidArgument)
	}
	if item.GetID() == "" {
		return fmt.Errorf("%w: entity id is empty", ErrInvalidArgument)
	}
	return nil
}

// ToDocument encodes item into its JSON document form.
func ToDocument[T Entity](item T) (map[string]any, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %T: %v", ErrInvalidArgument, item, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: encode %T: %v", ErrInvalidArgument, item, err)
	}
	return doc, nil
}

// FromDocument decodes a JSON document back into T.
func FromDocument[T Entity](doc map[string]any) (T, error) {
	var item T
	b, err := json.Marshal(doc)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(b, &item); err != nil {
		return item, err
	}
	return item, nil
}

// AddToField adds delta to the numeric field of doc, treating a missing field as zero.
func AddToField(doc map[string]any, field string, delta int) error {
	switch cur := doc[field].(type) {
	case nil:
		doc[field] = float64(delta)
	case float64:
		doc[field] = cur + float64(delta)
	default:
		return fmt.Errorf("%w: field %s is not numeric", ErrInvalidArgument, field)
	}
	return nil
}

// EqualityFilters returns an error unless every filter is an OpEq filter.
func EqualityFilters(filters []Filter) error {
	if len(filters) == 0 {
		return fmt.Errorf("%w: increment requires at least one filter", ErrInvalidArgument)
	}
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return err
		}
		if f.Op != OpEq {
			return fmt.Errorf("%w: increment filter %s must be an equality", ErrInvalidArgument, f.Field)
		}
	}
	return nil
}
