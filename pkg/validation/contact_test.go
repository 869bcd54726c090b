package validation

import (
	"strings"
	"testing"
	"time"

	"neurodek-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validInput() *domain.ContactInput {
	return &domain.ContactInput{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hello there",
	}
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	v := NewContactValidator(nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	in := validInput()
	in.Company = strPtr("Acme")
	in.Budget = strPtr("")

	sub, errs := v.Validate(in)
	require.Nil(t, errs)
	require.NotNil(t, sub)

	assert.Equal(t, "Ana", sub.Name)
	assert.Equal(t, "ana@x.com", sub.Email)
	assert.Equal(t, "Acme", *sub.Company)
	assert.Equal(t, "", *sub.Budget)
	assert.Equal(t, fixed, sub.CreatedAt)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.ContactInput)
		field  string
		rule   string
	}{
		{name: "empty name", mutate: func(in *domain.ContactInput) { in.Name = "" }, field: "name", rule: "required"},
		{name: "name too long", mutate: func(in *domain.ContactInput) { in.Name = strings.Repeat("a", 121) }, field: "name", rule: "max"},
		{name: "missing email", mutate: func(in *domain.ContactInput) { in.Email = "" }, field: "email", rule: "required"},
		{name: "invalid email", mutate: func(in *domain.ContactInput) { in.Email = "not-an-email" }, field: "email", rule: "email"},
		{name: "email without domain", mutate: func(in *domain.ContactInput) { in.Email = "ana@" }, field: "email", rule: "email"},
		{name: "missing message", mutate: func(in *domain.ContactInput) { in.Message = "" }, field: "message", rule: "required"},
		{name: "message too short", mutate: func(in *domain.ContactInput) { in.Message = "Hey" }, field: "message", rule: "min"},
		{name: "message too long", mutate: func(in *domain.ContactInput) { in.Message = strings.Repeat("m", 5001) }, field: "message", rule: "max"},
	}

	v := NewContactValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			sub, errs := v.Validate(in)
			assert.Nil(t, sub)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.rule, errs[0].Rule)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	v := NewContactValidator(nil)

	in := validInput()
	in.Name = strings.Repeat("é", 120)
	in.Message = strings.Repeat("ü", 5)
	_, errs := v.Validate(in)
	assert.Nil(t, errs, "lengths are counted in characters, not bytes")

	in.Message = strings.Repeat("m", 5000)
	_, errs = v.Validate(in)
	assert.Nil(t, errs)
}

func TestValidateReportsEveryField(t *testing.T) {
	v := NewContactValidator(nil)

	sub, errs := v.Validate(&domain.ContactInput{Email: "bad"})
	assert.Nil(t, sub)
	assert.Equal(t, []string{"name", "email", "message"}, errs.Fields())
	assert.Contains(t, errs.Error(), "Name: is required")
}

func TestValidateNilInput(t *testing.T) {
	_, errs := NewContactValidator(nil).Validate(nil)
	assert.Len(t, errs, 3)
}
