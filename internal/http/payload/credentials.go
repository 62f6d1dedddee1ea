package payload

import (
	"net/url"
	"plugshare/internal/core"

	"github.com/jellydator/validation"
)

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Contact  string `json:"contact"`
}

func (s *SignUpRequest) BindForm(values url.Values) {
	s.Username = values.Get("username")
	s.Password = values.Get("password")
	s.Contact = values.Get("contact")
}

func (s SignUpRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SignUpRequest) ToCoreSignUpMessage() core.SignUpMessage {
	return core.SignUpMessage{
		Username: s.Username,
		Password: s.Password,
		Contact:  s.Contact,
	}
}

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthRequest) BindForm(values url.Values) {
	a.Username = values.Get("username")
	a.Password = values.Get("password")
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
