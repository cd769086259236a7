package core

import "time"

type CreateRoundMessage struct {
	RoundID          string
	EntryFeeLamports int64
	TreasuryAddress  string
	Network          string
}

type EnterMessage struct {
	WalletAddress string
	TxSignature   string
}

type LoginMessage struct {
	Username string
	Password string
}

type RoundRecord struct {
	ID               string     `json:"_id"`
	RoundID          string     `json:"round_id"`
	IsActive         bool       `json:"is_active"`
	EntryFeeLamports int64      `json:"entry_fee_lamports"`
	TreasuryAddress  string     `json:"treasury_address"`
	Network          string     `json:"network"`
	WinnerAddress    *string    `json:"winner_address"`
	DrawnAt          *time.Time `json:"drawn_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type EntryRecord struct {
	ID            string    `json:"_id"`
	RoundID       string    `json:"round_id"`
	WalletAddress string    `json:"wallet_address"`
	TxSignature   string    `json:"tx_signature"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WinnerRecord struct {
	WalletAddress string `json:"wallet_address"`
	TxSignature   string `json:"tx_signature"`
}

type DrawResult struct {
	Round  RoundRecord  `json:"round"`
	Winner WinnerRecord `json:"winner"`
}
