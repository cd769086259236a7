package core

import (
	"context"
	"time"

	"solottery/internal/repository"
	tokenIssuer "solottery/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RoundStore . RoundStore
type RoundStore interface {
	Create(ctx context.Context, round repository.Round) (repository.Round, error)
	GetByRoundID(ctx context.Context, roundID string) (repository.Round, error)
	List(ctx context.Context) ([]repository.Round, error)
	Close(ctx context.Context, roundID, winnerAddress string, drawnAt time.Time) (repository.Round, error)
}

//counterfeiter:generate -o fake -fake-name EntryStore . EntryStore
type EntryStore interface {
	Create(ctx context.Context, entry repository.Entry) (repository.Entry, error)
	GetBySignature(ctx context.Context, signature string) (repository.Entry, error)
	GetByRoundSignature(ctx context.Context, roundID, signature string) (repository.Entry, error)
	List(ctx context.Context, roundID string) ([]repository.Entry, error)
	ListVerified(ctx context.Context, roundID string) ([]repository.Entry, error)
	SetVerified(ctx context.Context, entryID string, verified bool) (repository.Entry, error)
}

//counterfeiter:generate -o fake -fake-name AdminStore . AdminStore
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (repository.Admin, error)
}

//counterfeiter:generate -o fake -fake-name SignatureVerifier . SignatureVerifier
type SignatureVerifier interface {
	VerifySignature(ctx context.Context, network, signature, expectedWallet, expectedTreasury string) bool
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
