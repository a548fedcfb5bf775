package content

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/changomango/portfolio/internal/apperr"
	"github.com/changomango/portfolio/internal/textutil"
)

var statuses = []any{StatusCompleted, StatusInProgress, StatusResearch, StatusPlanning}

// Validate checks the catalog invariants: unique category and project ids,
// every project in a declared category with a known status and an ISO date.
func (s *Site) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Author),
		validation.Field(&s.Navigation),
		validation.Field(&s.Categories, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrInvalidContent, err)
	}

	categoryIDs := make([]any, 0, len(s.Categories))
	seen := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate category id %q", apperr.ErrInvalidContent, c.ID)
		}
		seen[c.ID] = struct{}{}
		categoryIDs = append(categoryIDs, c.ID)
	}

	projectIDs := make(map[string]struct{}, len(s.Projects))
	for i := range s.Projects {
		p := &s.Projects[i]
		if _, dup := projectIDs[p.ID]; dup && p.ID != "" {
			return fmt.Errorf("%w: duplicate project id %q", apperr.ErrInvalidContent, p.ID)
		}
		projectIDs[p.ID] = struct{}{}

		if err := validation.ValidateStruct(p,
			validation.Field(&p.ID, validation.Required),
			validation.Field(&p.Title, validation.Required),
			validation.Field(&p.Category, validation.Required, validation.In(categoryIDs...)),
			validation.Field(&p.Status, validation.Required, validation.In(statuses...)),
			validation.Field(&p.Date, validation.Required, validation.By(isoDate)),
		); err != nil {
			return fmt.Errorf("%w: project %q: %w", apperr.ErrInvalidContent, p.ID, err)
		}
	}
	return nil
}

// Validate implements validation.Validatable.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (n NavItem) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required),
		validation.Field(&n.Href, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

func isoDate(value any) error {
	s, _ := value.(string)
	if _, err := textutil.ParseDate(s); err != nil {
		return errors.New("must be an ISO date (YYYY-MM-DD)")
	}
	return nil
}
