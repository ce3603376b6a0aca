package content

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNoOfferings is returned for a document without offerings; the
	// carousel needs at least one card.
	ErrNoOfferings = errors.New("at least one offering is required")

	// ErrDuplicateSlug is returned when two projects share a slug.
	ErrDuplicateSlug = errors.New("duplicate project slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validFieldTypes = map[FieldType]bool{
	FieldText:     true,
	FieldEmail:    true,
	FieldTel:      true,
	FieldTextarea: true,
}

// Validate checks the shape of the document and returns the first problem.
func (s *Site) Validate() error {
	if len(s.Offerings) == 0 {
		return ErrNoOfferings
	}

	seen := make(map[string]bool, len(s.Showcase.Projects))
	for i, p := range s.Showcase.Projects {
		if p.Slug == "" {
			return fmt.Errorf("showcase.projects[%d]: slug is required", i)
		}
		if !slugPattern.MatchString(p.Slug) {
			return fmt.Errorf("showcase.projects[%d]: invalid slug %q", i, p.Slug)
		}
		if seen[p.Slug] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		seen[p.Slug] = true
	}

	for i, p := range s.Pricing.Plans {
		if p.Name == "" {
			return fmt.Errorf("pricing.plans[%d]: name is required", i)
		}
		if p.MonthlyPrice != nil && *p.MonthlyPrice < 0 {
			return fmt.Errorf("pricing.plans[%d]: monthly_price must be non-negative", i)
		}
		if p.YearlyPrice != nil && *p.YearlyPrice < 0 {
			return fmt.Errorf("pricing.plans[%d]: yearly_price must be non-negative", i)
		}
	}

	ids := make(map[string]bool, len(s.Contact.FormFields))
	for i, f := range s.Contact.FormFields {
		if f.ID == "" {
			return fmt.Errorf("contact.form_fields[%d]: id is required", i)
		}
		if ids[f.ID] {
			return fmt.Errorf("contact.form_fields[%d]: duplicate id %q", i, f.ID)
		}
		ids[f.ID] = true
		if f.Type != "" && !validFieldTypes[f.Type] {
			return fmt.Errorf("contact.form_fields[%d]: invalid type %q: must be one of text, email, tel, textarea", i, f.Type)
		}
	}

	return nil
}

// Project returns the showcase project with the given slug.
func (s *Site) Project(slug string) (*Project, bool) {
	for i := range s.Showcase.Projects {
		if s.Showcase.Projects[i].Slug == slug {
			return &s.Showcase.Projects[i], true
		}
	}
	return nil, false
}

// Slugs lists project slugs in showcase order.
func (s *Site) Slugs() []string {
	out := make([]string, 0, len(s.Showcase.Projects))
	for _, p := range s.Showcase.Projects {
		out = append(out, p.Slug)
	}
	return out
}

// Field returns the contact form field with the given id.
func (c Contact) Field(id string) (FormField, bool) {
	for _, f := range c.FormFields {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}
