package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Errors maps each failing field of a form to its single message.
// F is the form's field enum, so a map can only carry that form's keys.
type Errors[F ~string] map[F]string

func (e Errors[F]) Empty() bool { return len(e) == 0 }

// Has reports whether field has an error.
func (e Errors[F]) Has(field F) bool {
	_, ok := e[field]
	return ok
}

// Keys returns the failing fields in the given field order.
func (e Errors[F]) Keys(order []F) []F {
	out := make([]F, 0, len(e))
	for _, f := range order {
		if _, ok := e[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Only keeps the errors whose field satisfies keep.
func (e Errors[F]) Only(keep func(F) bool) Errors[F] {
	out := Errors[F]{}
	for f, msg := range e {
		if keep(f) {
			out[f] = msg
		}
	}
	return out
}

// Strings converts the map to plain string keys for JSON and templates.
func (e Errors[F]) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[string(f)] = msg
	}
	return out
}

// Schema describes one form: its ordered field set and the message shown for
// each failing rule. An empty tag key is the field's fallback message.
type Schema[F ~string] struct {
	Fields   []F
	Messages map[F]map[string]string
}

func (s Schema[F]) message(field F, tag string) string {
	if byTag, ok := s.Messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag[""]; ok {
			return msg
		}
	}
	return string(field) + " is invalid."
}

func (s Schema[F]) known(field F) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Check validates value (a struct carrying validate tags) against the schema.
// Each field reports at most its first failing rule.
func Check[F ~string](v *Validator, s Schema[F], value any) Errors[F] {
	out := Errors[F]{}
	err := v.v.Struct(value)
	if err == nil {
		return out
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// invalid input type is a programming error; surface it on every field
		for _, f := range s.Fields {
			out[f] = s.message(f, "")
		}
		return out
	}
	for _, fe := range fieldErrs {
		field := F(fe.Field())
		if !s.known(field) {
			continue
		}
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = s.message(field, fe.Tag())
	}
	return out
}

// CheckField validates a single field in the context of its full record.
func CheckField[F ~string](v *Validator, s Schema[F], value any, field F) (string, bool) {
	msg, ok := Check(v, s, value)[field]
	return msg, ok
}
