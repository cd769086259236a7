package payload

import (
	"solottery/internal/core"
	"solottery/internal/solana"

	"github.com/jellydator/validation"
)

type CreateRoundRequest struct {
	RoundID          string `json:"round_id"`
	EntryFeeLamports int64  `json:"entry_fee_lamports"`
	TreasuryAddress  string `json:"treasury_address"`
	Network          string `json:"network"`
}

func (c CreateRoundRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RoundID, validation.Required),
		validation.Field(&c.EntryFeeLamports, validation.Min(int64(0))),
		validation.Field(&c.TreasuryAddress, validation.Required),
		validation.Field(&c.Network, validation.In("devnet", "testnet", "mainnet-beta")),
	)
}

func (c CreateRoundRequest) ToMessage() core.CreateRoundMessage {
	network := c.Network
	if network == "" {
		network = solana.DefaultNetwork
	}
	return core.CreateRoundMessage{
		RoundID:          c.RoundID,
		EntryFeeLamports: c.EntryFeeLamports,
		TreasuryAddress:  c.TreasuryAddress,
		Network:          network,
	}
}
