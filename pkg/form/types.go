package form

import "strconv"

// Kind identifies how a field is collected.
type Kind string

const (
	// KindSelect picks a single value from a fixed list of choices.
	KindSelect Kind = "select"
	// KindText collects free text.
	KindText Kind = "text"
	// KindConfirm collects a yes/no answer.
	KindConfirm Kind = "confirm"
)

// Value is a collected answer: either text or a boolean flag.
type Value struct {
	isFlag bool
	text   string
	flag   bool
}

// Text wraps a string answer.
func Text(s string) Value {
	return Value{text: s}
}

// Flag wraps a boolean answer.
func Flag(b bool) Value {
	return Value{isFlag: true, flag: b}
}

// IsFlag reports whether the value holds a boolean.
func (v Value) IsFlag() bool {
	return v.isFlag
}

// Text returns the string payload. Flags render as "true"/"false".
func (v Value) Text() string {
	if v.isFlag {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

// Bool returns the boolean payload; text values are never true.
func (v Value) Bool() bool {
	return v.isFlag && v.flag
}

// Choice is one option of a KindSelect field. Label is shown to the operator,
// Value is what gets recorded.
type Choice struct {
	Label string
	Value string
}

// MessageFunc computes a prompt message from the answers collected so far.
type MessageFunc func(answers *AnswerSet) string

// DefaultFunc computes a default value. The boolean result reports whether a
// default exists at all.
type DefaultFunc func(answers *AnswerSet) (Value, bool)

// Validator checks raw operator input. Returned errors are shown to the
// operator and the field is asked again.
type Validator func(raw string, answers *AnswerSet) error

// Normalizer cleans raw input before it is recorded.
type Normalizer func(raw string) string

// Visibility decides whether a field is asked at all.
type Visibility func(answers *AnswerSet) bool

// FieldSpec describes one entry of a policy table. Specs are built once and
// never mutated.
type FieldSpec struct {
	Name      string
	Kind      Kind
	Message   MessageFunc
	Choices   []Choice
	Default   DefaultFunc
	Validate  Validator
	Normalize Normalizer
	When      Visibility
	// Skippable marks fields the operator may leave empty.
	Skippable bool
}

// StaticMessage returns a MessageFunc that ignores the answers.
func StaticMessage(msg string) MessageFunc {
	return func(*AnswerSet) string { return msg }
}

// Literal returns a DefaultFunc that always yields v.
func Literal(v Value) DefaultFunc {
	return func(*AnswerSet) (Value, bool) { return v, true }
}

// Question is a FieldSpec resolved against the current AnswerSet, ready to be
// presented by a Prompter.
type Question struct {
	Name       string
	Kind       Kind
	Message    string
	Choices    []Choice
	Default    Value
	HasDefault bool
	Skippable  bool

	validate  Validator
	normalize Normalizer
	answers   *AnswerSet
}

// Validate runs the field validator against raw input. Fields without a
// validator accept anything.
func (q Question) Validate(raw string) error {
	if q.validate == nil {
		return nil
	}
	return q.validate(raw, q.answers)
}

// Normalize applies the field normalizer. Fields without one keep the input.
func (q Question) Normalize(raw string) string {
	if q.normalize == nil {
		return raw
	}
	return q.normalize(raw)
}

// NewQuestion builds a Question outside of an Orchestrator run, mainly so
// prompt implementations can be exercised in isolation.
func NewQuestion(spec FieldSpec, answers *AnswerSet) Question {
	if answers == nil {
		answers = NewAnswerSet()
	}
	q := Question{
		Name:      spec.Name,
		Kind:      spec.Kind,
		Choices:   append([]Choice(nil), spec.Choices...),
		Skippable: spec.Skippable,
		validate:  spec.Validate,
		normalize: spec.Normalize,
		answers:   answers,
	}
	if spec.Message != nil {
		q.Message = spec.Message(answers)
	}
	if spec.Default != nil {
		q.Default, q.HasDefault = spec.Default(answers)
	}
	return q
}
