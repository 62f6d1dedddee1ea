package payload

import (
	"net/url"
	"plugshare/internal/core"

	"github.com/jellydator/validation"
)

type AddPlugRequest struct {
	Plug     string `json:"plug"`
	Location string `json:"location"`
	UserID   string `json:"user_id"`
}

func (a *AddPlugRequest) BindForm(values url.Values) {
	a.Plug = values.Get("plug")
	a.Location = values.Get("location")
	a.UserID = values.Get("user_id")
}

func (a AddPlugRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Plug, validation.Required),
		validation.Field(&a.Location, validation.Required),
		validation.Field(&a.UserID, validation.Required, isUUID),
	)
}

func (a AddPlugRequest) ToCorePlugMessage() core.PlugMessage {
	return core.PlugMessage{
		OwnerID:     a.UserID,
		Description: a.Plug,
		Location:    a.Location,
	}
}

type EditPlugRequest struct {
	PlugID   string `json:"plug_id"`
	Plug     string `json:"plug"`
	Location string `json:"location"`
}

func (e *EditPlugRequest) BindForm(values url.Values) {
	e.PlugID = values.Get("plug_id")
	e.Plug = values.Get("plug")
	e.Location = values.Get("location")
}

func (e EditPlugRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.PlugID, validation.Required, isUUID),
		validation.Field(&e.Plug, validation.Required),
		validation.Field(&e.Location, validation.Required),
	)
}

func (e EditPlugRequest) ToCoreEditPlugMessage() core.EditPlugMessage {
	return core.EditPlugMessage{
		PlugID:      e.PlugID,
		Description: e.Plug,
		Location:    e.Location,
	}
}

// PlugUserRequest names a plug and the user acting on it. It backs the delete,
// like and dislike endpoints.
type PlugUserRequest struct {
	PlugID string `json:"plug_id"`
	UserID string `json:"user_id"`
}

func (p *PlugUserRequest) BindForm(values url.Values) {
	p.PlugID = values.Get("plug_id")
	p.UserID = values.Get("user_id")
}

func (p PlugUserRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PlugID, validation.Required, isUUID),
		validation.Field(&p.UserID, validation.Required, isUUID),
	)
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

func (u *UserRequest) BindForm(values url.Values) {
	u.UserID = values.Get("user_id")
}

func (u UserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.UserID, validation.Required, isUUID),
	)
}
