package payload

import (
	"solottery/internal/core"

	"github.com/jellydator/validation"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
