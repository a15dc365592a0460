package form

import "fmt"

// AnswerSet records the values collected during a session in field order.
// Skipped fields are absent, which is different from present-but-empty.
// Entries can be recorded once and are read-only afterwards.
type AnswerSet struct {
	order  []string
	values map[string]Value
}

// NewAnswerSet returns an empty AnswerSet.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]Value)}
}

// Lookup returns the recorded value and whether the field was recorded.
func (a *AnswerSet) Lookup(name string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether the field was recorded.
func (a *AnswerSet) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Text returns the text of a recorded field, or "" when absent.
func (a *AnswerSet) Text(name string) string {
	v, ok := a.Lookup(name)
	if !ok || v.IsFlag() {
		return ""
	}
	return v.Text()
}

// Bool returns the flag of a recorded field, or false when absent.
func (a *AnswerSet) Bool(name string) bool {
	v, _ := a.Lookup(name)
	return v.Bool()
}

// Names lists recorded fields in the order they were collected.
func (a *AnswerSet) Names() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.order...)
}

// Len reports how many fields were recorded.
func (a *AnswerSet) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

// Map returns a copy of the recorded values keyed by field name. Flags map to
// bool, everything else to string.
func (a *AnswerSet) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for _, name := range a.order {
		v := a.values[name]
		if v.IsFlag() {
			out[name] = v.Bool()
			continue
		}
		out[name] = v.Text()
	}
	return out
}

// FromMap builds an AnswerSet from prefilled values, recording keys in the
// order given. Values must be string or bool.
func FromMap(order []string, values map[string]any) (*AnswerSet, error) {
	set := NewAnswerSet()
	for _, name := range order {
		raw, ok := values[name]
		if !ok {
			continue
		}
		var v Value
		switch typed := raw.(type) {
		case string:
			v = Text(typed)
		case bool:
			v = Flag(typed)
		default:
			return nil, fmt.Errorf("form: answer %q has unsupported type %T", name, raw)
		}
		if err := set.record(name, v); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (a *AnswerSet) record(name string, v Value) error {
	if name == "" {
		return fmt.Errorf("form: answer name is required")
	}
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, exists := a.values[name]; exists {
		return fmt.Errorf("form: answer %q already recorded", name)
	}
	a.values[name] = v
	a.order = append(a.order, name)
	return nil
}
