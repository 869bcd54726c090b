package validation

import (
	"fmt"
	"time"

	"neurodek-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	nameRules    = fmt.Sprintf("required,max=%d", domain.NameMaxLength)
	emailRules   = "required,email"
	messageRules = fmt.Sprintf("required,min=%d,max=%d", domain.MessageMinLength, domain.MessageMaxLength)
)

// ContactValidator checks contact payloads field by field. String lengths
// are counted in characters.
type ContactValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewContactValidator(validate *validator.Validate) *ContactValidator {
	if validate == nil {
		validate = validator.New()
	}
	return &ContactValidator{validate: validate, now: time.Now}
}

// Validate returns either a submission ready to persist or the complete
// list of field errors. Exactly one of the results is non-nil.
func (v *ContactValidator) Validate(in *domain.ContactInput) (*domain.ContactSubmission, FieldErrors) {
	if in == nil {
		in = &domain.ContactInput{}
	}

	var errs FieldErrors
	errs = append(errs, v.check("name", in.Name, nameRules)...)
	errs = append(errs, v.check("email", in.Email, emailRules)...)
	errs = append(errs, v.check("message", in.Message, messageRules)...)
	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Budget:    in.Budget,
		Message:   in.Message,
		CreatedAt: v.now().UTC(),
	}, nil
}

func (v *ContactValidator) check(field, value, rules string) FieldErrors {
	if err := v.validate.Var(value, rules); err != nil {
		return fromValidatorError(field, err)
	}
	return nil
}
