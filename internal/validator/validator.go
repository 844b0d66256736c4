package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Credentials is the payload for login and registration.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogin checks that both credential fields are present.
// Login intentionally applies no format rules: existing accounts must
// keep working whatever their username looks like.
func (v *Validator) ValidateLogin(c *Credentials) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username,
			validation.Required.Error("username_required"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// ValidateRegistration checks username shape and password strength for
// new accounts.
func (v *Validator) ValidateRegistration(c *Credentials) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username,
			validation.Required.Error("username_required"),
			validation.Length(3, 32).Error("username_length"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 72).Error("password_length"),
		),
	)
}

// ValidateGrade checks a grade value is within the rating scale.
func (v *Validator) ValidateGrade(grade float64) error {
	return validation.Validate(grade,
		validation.Min(0.0).Error("grade_below_scale"),
		validation.Max(5.0).Error("grade_above_scale"),
	)
}
