// Package validate checks form input before it reaches the board store.
// The store trusts its callers; every rule lives here, in the input layer.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Field pairs one input value with the rules it must satisfy. Zero-valued
// rules are skipped, so a Field only enforces what it declares.
type Field struct {
	Name     string
	Value    string
	Required bool
	MinLen   int
	MaxLen   int
	Numeric  bool
	Min      int
	Max      int
}

// Check returns the first rule violation, or nil.
func (f Field) Check() error {
	value := strings.TrimSpace(f.Value)
	if f.Required && value == "" {
		return fmt.Errorf("%s is required", f.Name)
	}
	if value == "" {
		return nil
	}
	if f.MinLen > 0 && len(value) < f.MinLen {
		return fmt.Errorf("%s must be at least %d characters", f.Name, f.MinLen)
	}
	if f.MaxLen > 0 && len(value) > f.MaxLen {
		return fmt.Errorf("%s must be at most %d characters", f.Name, f.MaxLen)
	}
	if f.Numeric {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number", f.Name)
		}
		if n < f.Min {
			return fmt.Errorf("%s must be at least %d", f.Name, f.Min)
		}
		if f.Max > f.Min && n > f.Max {
			return fmt.Errorf("%s must be at most %d", f.Name, f.Max)
		}
	}
	return nil
}

// All checks fields in order and returns the first violation.
func All(fields ...Field) error {
	for _, f := range fields {
		if err := f.Check(); err != nil {
			return err
		}
	}
	return nil
}
