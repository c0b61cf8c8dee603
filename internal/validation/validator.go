// Package validation runs the declarative field rules carried as `validate`
// struct tags on form values and turns failures into per-form error maps.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"flyaway/internal/utils"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var (
	mobileRe     = regexp.MustCompile(`^[0-9]{10}$`)
	alphaSpaceRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	passportRe   = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	lowerRe      = regexp.MustCompile(`[a-z]`)
	upperRe      = regexp.MustCompile(`[A-Z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
)

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
	loc *time.Location
}

type Option func(*Validator)

// WithClock overrides the clock used by date bound rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithLocation sets the zone that decides which calendar day "today" is.
// The default is the display zone, Asia/Bangkok.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// New registers the custom rules used by the booking forms:
// mobile10, alphaspace, passport, notfuture, strongpassword and onorafter.
func New(opts ...Option) *Validator {
	out := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: time.Now, loc: defaultLocation()}
	for _, opt := range opts {
		opt(out)
	}

	// report json names so error keys match the wire format
	out.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(out.v, "mobile10", matchString(mobileRe))
	mustRegister(out.v, "alphaspace", matchString(alphaSpaceRe))
	mustRegister(out.v, "passport", matchString(passportRe))
	mustRegister(out.v, "strongpassword", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return lowerRe.MatchString(s) && upperRe.MatchString(s) && digitRe.MatchString(s)
	})
	mustRegister(out.v, "notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		today := out.now().In(out.loc)
		return !d.After(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
	})
	mustRegister(out.v, "onorafter", func(fl validator.FieldLevel) bool {
		other := fl.Parent().FieldByName(fl.Param())
		if !other.IsValid() || other.Kind() != reflect.String {
			return false
		}
		start, err := time.Parse(dateLayout, other.String())
		if err != nil {
			// the sibling reports its own error
			return true
		}
		end, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !end.Before(start)
	})
	return out
}

// Now returns the validator clock reading.
func (v *Validator) Now() time.Time { return v.now() }

func defaultLocation() *time.Location {
	loc, err := utils.LoadZone("")
	if err != nil {
		return time.UTC
	}
	return loc
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}
