package handler

import (
	"context"
	"net/http"

	"solottery/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LotteryService . LotteryService
type LotteryService interface {
	Authenticate(ctx context.Context, msg core.LoginMessage) (string, error)
	AuthorizeAdmin(token string) error
	CreateRound(ctx context.Context, msg core.CreateRoundMessage) (core.RoundRecord, error)
	ListRounds(ctx context.Context) ([]core.RoundRecord, error)
	GetRound(ctx context.Context, roundID string) (core.RoundRecord, error)
	ListEntries(ctx context.Context, roundID string) ([]core.EntryRecord, error)
	SubmitEntry(ctx context.Context, roundID string, msg core.EnterMessage) (core.EntryRecord, error)
	ReverifyEntry(ctx context.Context, roundID, signature string) (core.EntryRecord, error)
	Draw(ctx context.Context, roundID string) (core.DrawResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name HealthChecker . HealthChecker
type HealthChecker interface {
	Ping(ctx context.Context) error
}
