package contact

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

// maxFieldLength caps any single submitted value.
const maxFieldLength = 2000

var telPattern = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)

// FieldErrors maps a field id to what is wrong with it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id+": "+e[id])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Validate checks values against the declared form fields. Values for
// undeclared ids are ignored.
func Validate(fields []content.FormField, values map[string]string) error {
	errs := FieldErrors{}
	for _, f := range fields {
		v := strings.TrimSpace(values[f.ID])
		if v == "" {
			if f.Required {
				errs[f.ID] = fmt.Sprintf("%s is required", f.Label)
			}
			continue
		}
		if len(v) > maxFieldLength {
			errs[f.ID] = fmt.Sprintf("%s is too long", f.Label)
			continue
		}
		switch f.Type {
		case content.FieldEmail:
			if addr, err := mail.ParseAddress(v); err != nil || addr.Address != v {
				errs[f.ID] = fmt.Sprintf("%s must be a valid email address", f.Label)
			}
		case content.FieldTel:
			if !telPattern.MatchString(v) || countDigits(v) < 7 {
				errs[f.ID] = fmt.Sprintf("%s must be a valid phone number", f.Label)
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewSubmission builds a submission from validated values. Only declared
// fields are kept.
func NewSubmission(fields []content.FormField, values map[string]string, sourcePage string) Submission {
	sub := Submission{
		Fields:     make(map[string]string, len(fields)),
		SourcePage: sourcePage,
	}
	for _, f := range fields {
		v := strings.TrimSpace(values[f.ID])
		if v == "" {
			continue
		}
		sub.Fields[f.ID] = v
		switch f.ID {
		case "name":
			sub.Name = v
		case "phone":
			sub.Phone = v
		case "email":
			sub.Email = v
		case "brand":
			sub.Brand = v
		}
	}
	return sub
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
