package console

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = validator.New()

// Kind selects a field's input widget and value coercion.
type Kind int

const (
	Text Kind = iota
	Email
	Number  // integer
	Decimal // float
	Bool
	Select
	Lines // multiline text, e.g. the order item entry
)

// Field describes one form field. Rules uses validator var-syntax
// ("required", "email", "min=1", "gte=0", ...). Check, when set, runs after
// Rules and returns a message for values the rule syntax cannot express.
type Field struct {
	Name    string
	Label   string
	Kind    Kind
	Rules   string
	Options []string // Select choices
	Default interface{}
	Check   func(v interface{}) string
}

// Form is the reactive create/edit model of one screen: current values,
// touched flags, and per-field validation messages. It is pure state, no
// network.
type Form struct {
	Fields  []Field
	values  map[string]interface{}
	touched map[string]bool
	errs    map[string]string
}

func NewForm(fields []Field) *Form {
	f := &Form{Fields: fields}
	f.Reset()
	return f
}

// Reset restores every field to its default and clears touched/error state.
func (f *Form) Reset() {
	f.values = make(map[string]interface{}, len(f.Fields))
	f.touched = make(map[string]bool)
	f.errs = make(map[string]string)
	for _, fd := range f.Fields {
		if fd.Default != nil {
			f.values[fd.Name] = fd.Default
		} else {
			f.values[fd.Name] = zeroValue(fd.Kind)
		}
	}
}

func zeroValue(k Kind) interface{} {
	switch k {
	case Number:
		return int64(0)
	case Decimal:
		return float64(0)
	case Bool:
		return false
	default:
		return ""
	}
}

// Set coerces raw input to the field's kind, stores it, and marks the field
// touched. A coercion failure becomes the field's validation message.
func (f *Form) Set(name string, raw interface{}) {
	fd := f.field(name)
	if fd == nil {
		return
	}
	f.touched[name] = true
	delete(f.errs, name)
	v, err := coerce(fd.Kind, raw)
	if err != nil {
		f.errs[name] = fmt.Sprintf("%s must be a number", fd.Label)
		f.values[name] = raw
		return
	}
	f.values[name] = v
}

func coerce(k Kind, raw interface{}) (interface{}, error) {
	switch k {
	case Number:
		if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
			return int64(0), nil
		}
		return cast.ToInt64E(raw)
	case Decimal:
		if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
			return float64(0), nil
		}
		return cast.ToFloat64E(raw)
	case Bool:
		if s, ok := raw.(string); ok {
			// checkbox posts "on" or nothing
			return s == "on" || s == "true" || s == "1", nil
		}
		return cast.ToBoolE(raw)
	default:
		return cast.ToString(raw), nil
	}
}

func (f *Form) field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// Clone returns a detached copy of the form's current state. The copy shares
// the immutable field schema but owns its value, touched, and error maps, so
// it can be read while the original keeps changing.
func (f *Form) Clone() *Form {
	c := &Form{
		Fields:  f.Fields,
		values:  make(map[string]interface{}, len(f.values)),
		touched: make(map[string]bool, len(f.touched)),
		errs:    make(map[string]string, len(f.errs)),
	}
	for k, v := range f.values {
		c.values[k] = v
	}
	for k, v := range f.touched {
		c.touched[k] = v
	}
	for k, v := range f.errs {
		c.errs[k] = v
	}
	return c
}

// Get returns the current value of a field.
func (f *Form) Get(name string) interface{} {
	return f.values[name]
}

// Values returns a copy of the current values.
func (f *Form) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Touched reports whether a field has been touched.
func (f *Form) Touched(name string) bool {
	return f.touched[name]
}

// FieldError returns the current validation message for a field, "" if none.
func (f *Form) FieldError(name string) string {
	return f.errs[name]
}

// Validate runs every field's rules against the current values. It returns
// true when the form is submittable; on failure it records per-field messages
// and marks all fields touched so the messages render.
func (f *Form) Validate() bool {
	for _, fd := range f.Fields {
		if f.errs[fd.Name] != "" {
			continue // keep coercion errors
		}
		v := f.values[fd.Name]
		if fd.Rules != "" {
			if err := validate.Var(v, fd.Rules); err != nil {
				f.errs[fd.Name] = ruleMessage(fd, err)
				continue
			}
		}
		if fd.Check != nil {
			if msg := fd.Check(v); msg != "" {
				f.errs[fd.Name] = msg
			}
		}
	}
	if len(f.errs) > 0 {
		for _, fd := range f.Fields {
			f.touched[fd.Name] = true
		}
		return false
	}
	return true
}

func ruleMessage(fd Field, err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Sprintf("%s is invalid", fd.Label)
	}
	switch verrs[0].Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fd.Label)
	case "email":
		return "Enter a valid email address"
	case "min", "gte", "gt":
		return fmt.Sprintf("%s is too small", fd.Label)
	case "max", "lte", "lt":
		return fmt.Sprintf("%s is too large", fd.Label)
	default:
		return fmt.Sprintf("%s is invalid", fd.Label)
	}
}
