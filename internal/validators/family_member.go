package validators

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name, which is required.
	FieldName = "name"

	// FieldDates targets birthDate and deathDate. Both are optional; when
	// set they are partial ISO dates and death may not precede birth.
	FieldDates = "dates"

	// FieldRelations targets parentIds and spouseIds.
	FieldRelations = "relations"
)

// MaxNameLength is the longest accepted member name, in runes.
const MaxNameLength = 200

// dateLayouts are the accepted partial date forms, most precise first.
// Genealogy data often knows only the year.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FamilyMemberValidator implements [Validator] for [models.FamilyMember].
type FamilyMemberValidator struct{}

// NewFamilyMemberValidator constructs a new FamilyMemberValidator and
// returns it as the Validator interface.
func NewFamilyMemberValidator() Validator {
	return &FamilyMemberValidator{}
}

// Validate checks a member value or pointer. With no fields every rule
// runs.
func (v *FamilyMemberValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FamilyMember:
		return v.validateMember(ctx, value, fields...)
	case *models.FamilyMember:
		return v.validateMember(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FamilyMemberValidator) validateMember(_ context.Context, m models.FamilyMember, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDates, FieldRelations}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(m.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldDates:
			birth, err := parsePartialDate(m.BirthDate)
			if err != nil {
				return fmt.Errorf("birthDate: %w", err)
			}
			death, err := parsePartialDate(m.DeathDate)
			if err != nil {
				return fmt.Errorf("deathDate: %w", err)
			}
			if !birth.IsZero() && !death.IsZero() && death.Before(birth) {
				return ErrDeathBeforeBirth
			}
		case FieldRelations:
			for _, ids := range [][]string{m.ParentIDs, m.SpouseIDs} {
				for _, id := range ids {
					if id == "" {
						return ErrEmptyReference
					}
					if m.ID != "" && id == m.ID {
						return ErrSelfReference
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// parsePartialDate returns the zero time for an empty string. A partial
// date is compared by its first possible day.
func parsePartialDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
