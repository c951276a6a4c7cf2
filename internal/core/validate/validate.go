// Package validate implements schema-declared form validation.
//
// A Schema lists per-field rules plus cross-field rules. Validation
// returns the first violated rule's message for each field, mirroring
// how the dashboard forms surface errors: one message per input,
// cross-field checks only after the involved fields pass on their own.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Errors maps a field name to the first violated constraint's message.
type Errors map[string]string

// Any reports whether at least one field failed validation.
func (e Errors) Any() bool { return len(e) > 0 }

// Error renders the field errors as a single line, fields sorted for stability.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range fields {
		fmt.Fprintf(&b, "; %s: %s", f, e[f])
	}
	return b.String()
}

// Rule checks a single field value and returns a message when violated.
type Rule func(value string) string

// Field declares the rules for one named field.
type Field struct {
	// Name is the wire-level field name (e.g. "licenseExpiry").
	Name string
	// Optional fields skip their rules when the value is empty.
	Optional bool
	// Rules run in order; the first violation wins.
	Rules []Rule
}

// CrossRule relates multiple fields. It runs only when every listed
// field has passed its own rules, and reports against Target.
type CrossRule struct {
	Target string
	Fields []string
	Check  func(values map[string]string) string
}

// Schema is a full record constraint specification.
type Schema struct {
	Fields []Field
	Cross  []CrossRule
}

// Validate checks the candidate values against the schema.
// An empty result means the record is accepted.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}

	for _, f := range s.Fields {
		v := values[f.Name]
		if f.Optional && v == "" {
			continue
		}
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}

	for _, cr := range s.Cross {
		clean := true
		for _, name := range cr.Fields {
			if _, bad := errs[name]; bad {
				clean = false
				break
			}
		}
		if !clean {
			continue
		}
		if msg := cr.Check(values); msg != "" {
			if _, taken := errs[cr.Target]; !taken {
				errs[cr.Target] = msg
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Required rejects empty values.
func Required(msg string) Rule {
	return func(v string) string {
		if v == "" {
			return msg
		}
		return ""
	}
}

// MinLen rejects values shorter than n characters.
func MinLen(n int, msg string) Rule {
	return func(v string) string {
		if len(v) < n {
			return msg
		}
		return ""
	}
}

// MaxLen rejects values longer than n characters.
func MaxLen(n int, msg string) Rule {
	return func(v string) string {
		if len(v) > n {
			return msg
		}
		return ""
	}
}

// ExactLen rejects values whose length differs from n.
func ExactLen(n int, msg string) Rule {
	return func(v string) string {
		if len(v) != n {
			return msg
		}
		return ""
	}
}

// Pattern rejects values not fully matching the expression.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email rejects values that are not plausible email addresses.
func Email(msg string) Rule {
	return Pattern(emailRe, msg)
}

// OneOf rejects values outside the allowed set.
func OneOf(msg string, allowed ...string) Rule {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return msg
	}
}

// IntBetween rejects values that do not parse as an integer in [lo, hi].
func IntBetween(lo, hi int, msg string) Rule {
	return func(v string) string {
		n, err := strconv.Atoi(v)
		if err != nil || n < lo || n > hi {
			return msg
		}
		return ""
	}
}

// FutureDate rejects dates that do not parse or are not after now.
func FutureDate(msg string) Rule {
	return func(v string) string {
		t, err := ParseTime(v)
		if err != nil || !t.After(time.Now()) {
			return msg
		}
		return ""
	}
}

// Check wraps an arbitrary predicate.
func Check(ok func(string) bool, msg string) Rule {
	return func(v string) string {
		if !ok(v) {
			return msg
		}
		return ""
	}
}

// timeLayouts are the accepted wire formats, tried in order. The forms
// submit datetime-local values (no zone); dates come as plain days.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a form timestamp in any accepted layout.
func ParseTime(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
