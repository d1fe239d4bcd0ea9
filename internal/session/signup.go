package session

import (
	"github.com/go-playground/validator/v10"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/roles"
)

const minPasswordLength = 6

// SignupInput is the registration form as entered by the user. It is
// transient: validated, converted to the wire payload, and dropped.
type SignupInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string
	ConfirmPassword string
	Role            string `validate:"required"`
	Phone           string
	ProfileImage    string
}

// validate enforces the client-side rules before any network call. The
// password rules are cross-field and produce specific user-facing
// messages, so they run by hand ahead of the struct validation.
func (in SignupInput) validate(v *validator.Validate) error {
	if in.Password != in.ConfirmPassword {
		return &ValidationError{Message: "Passwords do not match"}
	}
	if len(in.Password) < minPasswordLength {
		return &ValidationError{Message: "Password must be at least 6 characters long"}
	}
	if err := v.Struct(in); err != nil {
		return &ValidationError{Message: "Please fill in all required fields correctly"}
	}
	return nil
}

// payload converts the form into the backend's registration payload,
// normalizing the single role selection into the ROLE_* tag list
func (in SignupInput) payload() api.SignupRequest {
	return api.SignupRequest{
		Name:         in.Name,
		Email:        in.Email,
		Password:     in.Password,
		Phone:        in.Phone,
		ProfileImage: in.ProfileImage,
		Roles:        []string{roles.Parse(in.Role).String()},
	}
}
