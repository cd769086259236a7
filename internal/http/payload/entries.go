package payload

import (
	"solottery/internal/core"

	"github.com/jellydator/validation"
)

type EnterRequest struct {
	WalletAddress string `json:"wallet_address"`
	TxSignature   string `json:"tx_signature"`
}

func (e EnterRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.WalletAddress, validation.Required),
		validation.Field(&e.TxSignature, validation.Required),
	)
}

func (e EnterRequest) ToMessage() core.EnterMessage {
	return core.EnterMessage{
		WalletAddress: e.WalletAddress,
		TxSignature:   e.TxSignature,
	}
}
