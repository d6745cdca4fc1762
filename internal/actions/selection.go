package actions

import (
	"errors"
	"fmt"
)

// ErrZeroSelection is returned when a zero Selection is modified.
var ErrZeroSelection = errors.New("selection not initialised; use NewSelection")

// Selection maps every catalog key to its checked state.
// The zero value reads as empty; create one with NewSelection to modify it.
type Selection struct {
	checked map[string]bool
}

// NewSelection returns a fully populated selection with every action unchecked.
func NewSelection() Selection {
	checked := make(map[string]bool, len(catalog))
	for _, a := range catalog {
		checked[a.Key] = false
	}
	return Selection{checked: checked}
}

// SelectionOf is a convenience for building a selection from a list of keys.
func SelectionOf(keys ...string) (Selection, error) {
	s := NewSelection()
	for _, k := range keys {
		if err := s.Set(k, true); err != nil {
			return NewSelection(), err
		}
	}
	return s, nil
}

// Set updates the checked state of an action. Unknown keys are rejected so
// the selection never grows beyond the catalog.
func (s Selection) Set(key string, on bool) error {
	a, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("unknown action %q", key)
	}
	if s.checked == nil {
		return ErrZeroSelection
	}
	s.checked[a.Key] = on
	return nil
}

// Toggle flips the checked state of an action and returns the new state.
func (s Selection) Toggle(key string) (bool, error) {
	a, ok := Lookup(key)
	if !ok {
		return false, fmt.Errorf("unknown action %q", key)
	}
	if s.checked == nil {
		return false, ErrZeroSelection
	}
	s.checked[a.Key] = !s.checked[a.Key]
	return s.checked[a.Key], nil
}

// IsSet reports whether the action is checked. Unknown keys report false.
func (s Selection) IsSet(key string) bool {
	a, ok := Lookup(key)
	if !ok {
		return false
	}
	return s.checked[a.Key]
}

// Any reports whether at least one action is checked.
func (s Selection) Any() bool {
	for _, on := range s.checked {
		if on {
			return true
		}
	}
	return false
}

// Selected returns the checked actions in catalog order.
func (s Selection) Selected() []Action {
	var out []Action
	for _, a := range catalog {
		if s.checked[a.Key] {
			out = append(out, a)
		}
	}
	return out
}

// Clear unchecks every action.
func (s Selection) Clear() {
	for k := range s.checked {
		s.checked[k] = false
	}
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	c := NewSelection()
	for k, v := range s.checked {
		c.checked[k] = v
	}
	return c
}
