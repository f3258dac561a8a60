package payload

import (
	"regexp"

	"blogr/internal/core"

	"github.com/jellydator/validation"
)

var emailRegex *regexp.Regexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthRequest is the body of both register and login calls: the username
// must be a syntactically valid email and the password at least 5 chars.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Match(emailRegex)),
		validation.Field(&a.Password, validation.Required, validation.Length(5, 0)),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
