package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

func TestFamilyMemberValidator_Validate(t *testing.T) {
	v := NewFamilyMemberValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		member  models.FamilyMember
		fields  []string
		wantErr error
	}{
		{
			name:   "minimal member",
			member: models.FamilyMember{Name: "Ada"},
		},
		{
			name: "full member",
			member: models.FamilyMember{
				ID: "a", Name: "Ada Lovelace",
				BirthDate: "1815-12-10", DeathDate: "1852-11",
				ParentIDs: []string{"p1", "p2"}, SpouseIDs: []string{"s1"},
			},
		},
		{
			name:   "year only",
			member: models.FamilyMember{Name: "Old", BirthDate: "1700", DeathDate: "1760"},
		},
		{
			name:    "blank name",
			member:  models.FamilyMember{Name: "   "},
			wantErr: ErrEmptyName,
		},
		{
			name:    "long name",
			member:  models.FamilyMember{Name: strings.Repeat("я", MaxNameLength+1)},
			wantErr: ErrNameTooLong,
		},
		{
			name:    "bad birth date",
			member:  models.FamilyMember{Name: "Ada", BirthDate: "10/12/1815"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "impossible day",
			member:  models.FamilyMember{Name: "Ada", DeathDate: "1852-02-30"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "death before birth",
			member:  models.FamilyMember{Name: "Ada", BirthDate: "1815", DeathDate: "1814-12-31"},
			wantErr: ErrDeathBeforeBirth,
		},
		{
			name:    "own parent",
			member:  models.FamilyMember{ID: "a", Name: "Ada", ParentIDs: []string{"a"}},
			wantErr: ErrSelfReference,
		},
		{
			name:    "empty spouse id",
			member:  models.FamilyMember{Name: "Ada", SpouseIDs: []string{""}},
			wantErr: ErrEmptyReference,
		},
		{
			name:   "only the name is checked",
			member: models.FamilyMember{Name: "Ada", BirthDate: "someday"},
			fields: []string{FieldName},
		},
		{
			name:    "unknown field",
			member:  models.FamilyMember{Name: "Ada"},
			fields:  []string{"hash"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.member, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFamilyMemberValidator_Pointer(t *testing.T) {
	v := NewFamilyMemberValidator()

	assert.NoError(t, v.Validate(context.Background(), &models.FamilyMember{Name: "Ada"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.FamilyMember{}), ErrEmptyName)
}

func TestFamilyMemberValidator_UnsupportedType(t *testing.T) {
	v := NewFamilyMemberValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "Ada"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Profile{}), ErrUnsupportedType)
}
