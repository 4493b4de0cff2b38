package validator

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format of date inputs (<input type="date">).
const DateLayout = "2006-01-02"

// Form reads typed values out of a submitted form and records a field
// error for each value that is missing or malformed.  Failed reads return
// the zero value; callers check Err once after reading every field.
type Form struct {
	values url.Values
	*Validator
}

func NewForm(values url.Values) *Form {
	return &Form{values: values, Validator: New()}
}

func (f *Form) raw(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

// String returns the trimmed value, which must be non-empty.
func (f *Form) String(key string) string {
	s := f.raw(key)
	f.Check(s != "", key, "must be provided")
	return s
}

// Email returns a required value that must look like an address.
func (f *Form) Email(key string) string {
	s := f.String(key)
	if s != "" {
		f.Check(Matches(s, EmailRX), key, "must be a valid email address")
	}
	return s
}

// ID returns a required positive integer identifier.
func (f *Form) ID(key string) uint64 {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		f.AddError(key, "must be a positive integer")
		return 0
	}
	return n
}

// Count returns a required non-negative integer.
func (f *Form) Count(key string) int {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		f.AddError(key, "must be a non-negative integer")
		return 0
	}
	return n
}

// Amount returns a required non-negative decimal.
func (f *Form) Amount(key string) float64 {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		f.AddError(key, "must be a non-negative number")
		return 0
	}
	return n
}

// Date returns a required YYYY-MM-DD date in UTC.
func (f *Form) Date(key string) time.Time {
	s := f.String(key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		f.AddError(key, "must be a date (YYYY-MM-DD)")
		return time.Time{}
	}
	return t
}

// OptionalDate returns nil for an empty value.
func (f *Form) OptionalDate(key string) *time.Time {
	if f.raw(key) == "" {
		return nil
	}
	t := f.Date(key)
	if t.IsZero() {
		return nil
	}
	return &t
}
