package repository

import "time"

type Round struct {
	ID               string     `gorm:"primaryKey;autoIncrement:false"` // server-generated uuid
	RoundID          string     `gorm:"size:64;uniqueIndex;not null"`   // human readable, e.g. R-2025-001
	IsActive         bool       `gorm:"not null;default:true"`
	EntryFeeLamports int64      `gorm:"not null"`
	TreasuryAddress  string     `gorm:"size:44;not null"` // base58 solana pubkey
	Network          string     `gorm:"size:16;not null"` // devnet | testnet | mainnet-beta
	WinnerAddress    *string    `gorm:"size:44"`
	DrawnAt          *time.Time // set exactly once, together with WinnerAddress
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

type Entry struct {
	ID            string    `gorm:"primaryKey;autoIncrement:false"`
	RoundID       string    `gorm:"size:64;index;not null"`
	WalletAddress string    `gorm:"size:44;not null"`
	TxSignature   string    `gorm:"size:88;uniqueIndex;not null"` // unique across all rounds
	Verified      bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

type Admin struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
