package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"solottery/internal/repository"
	tokenIssuer "solottery/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrRoundNotFound error = errors.New("round not found")
var ErrRoundExists error = errors.New("round_id already exists")
var ErrRoundClosed error = errors.New("round is closed")
var ErrEntryNotFound error = errors.New("entry not found")
var ErrDuplicateEntry error = errors.New("this transaction was already submitted")
var ErrNoEligibleEntries error = errors.New("no verified entries to draw from")
var ErrAdminNotFound error = errors.New("admin not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrInvalidToken error = errors.New("invalid admin token")

// Lottery orchestrates round lifecycle, entry verification and the draw.
// It is the sole writer of a round's is_active, winner_address and drawn_at.
type Lottery struct {
	logs      *zap.SugaredLogger
	rounds    RoundStore
	entries   EntryStore
	admins    AdminStore
	verifier  SignatureVerifier
	jwtIssuer JWTIssuer
}

func NewLottery(logger *zap.SugaredLogger, rounds RoundStore, entries EntryStore, admins AdminStore, verifier SignatureVerifier, jwtIssuer JWTIssuer) *Lottery {
	return &Lottery{
		logs:      logger,
		rounds:    rounds,
		entries:   entries,
		admins:    admins,
		verifier:  verifier,
		jwtIssuer: jwtIssuer,
	}
}

// Authenticate checks admin credentials and returns a signed bearer token.
func (l *Lottery) Authenticate(ctx context.Context, msg LoginMessage) (string, error) {
	admin, err := l.admins.GetByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", ErrAdminNotFound
		}
		return "", fmt.Errorf("get admin from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Username:   admin.Username,
		Subject:    admin.ID,
		Expiration: 24,
	}
	token := l.jwtIssuer.Generate(tokenInfo)
	signed, err := l.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// AuthorizeAdmin validates a bearer token previously issued by Authenticate.
func (l *Lottery) AuthorizeAdmin(token string) error {
	if _, err := l.jwtIssuer.Validate(token); err != nil {
		return ErrInvalidToken
	}
	return nil
}

func (l *Lottery) CreateRound(ctx context.Context, msg CreateRoundMessage) (RoundRecord, error) {
	round, err := l.rounds.Create(ctx, repository.Round{
		RoundID:          msg.RoundID,
		EntryFeeLamports: msg.EntryFeeLamports,
		TreasuryAddress:  msg.TreasuryAddress,
		Network:          msg.Network,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoundExists) {
			return RoundRecord{}, ErrRoundExists
		}
		return RoundRecord{}, fmt.Errorf("create round: %w", err)
	}

	l.logs.Infow("round created", "round_id", round.RoundID, "network", round.Network)

	return roundToRecord(round), nil
}

func (l *Lottery) ListRounds(ctx context.Context) ([]RoundRecord, error) {
	rounds, err := l.rounds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	records := make([]RoundRecord, len(rounds))
	for i, round := range rounds {
		records[i] = roundToRecord(round)
	}
	return records, nil
}

func (l *Lottery) GetRound(ctx context.Context, roundID string) (RoundRecord, error) {
	round, err := l.getRound(ctx, roundID)
	if err != nil {
		return RoundRecord{}, err
	}
	return roundToRecord(round), nil
}

func (l *Lottery) ListEntries(ctx context.Context, roundID string) ([]EntryRecord, error) {
	if _, err := l.getRound(ctx, roundID); err != nil {
		return nil, err
	}

	entries, err := l.entries.List(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	records := make([]EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = entryToRecord(entry)
	}
	return records, nil
}

// SubmitEntry verifies the payment signature on chain and persists the entry
// with the verdict. Unverified submissions are stored rather than rejected:
// the transaction may simply not be visible to the RPC endpoint yet, and the
// client re-verifies later. Unverified entries never enter the draw.
func (l *Lottery) SubmitEntry(ctx context.Context, roundID string, msg EnterMessage) (EntryRecord, error) {
	round, err := l.getRound(ctx, roundID)
	if err != nil {
		return EntryRecord{}, err
	}
	if !round.IsActive {
		return EntryRecord{}, ErrRoundClosed
	}

	// Cheap pre-check to skip the chain query on obvious replays. Correctness
	// does not depend on it: the unique index decides at insert time.
	if _, err := l.entries.GetBySignature(ctx, msg.TxSignature); err == nil {
		return EntryRecord{}, ErrDuplicateEntry
	} else if !errors.Is(err, repository.ErrEntryNotFound) {
		return EntryRecord{}, fmt.Errorf("check signature: %w", err)
	}

	verified := l.verifier.VerifySignature(ctx, round.Network, msg.TxSignature, msg.WalletAddress, round.TreasuryAddress)

	entry, err := l.entries.Create(ctx, repository.Entry{
		RoundID:       roundID,
		WalletAddress: msg.WalletAddress,
		TxSignature:   msg.TxSignature,
		Verified:      verified,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEntryExists) {
			return EntryRecord{}, ErrDuplicateEntry
		}
		return EntryRecord{}, fmt.Errorf("create entry: %w", err)
	}

	l.logs.Infow("entry submitted",
		"round_id", roundID,
		"wallet", msg.WalletAddress,
		"signature", msg.TxSignature,
		"verified", verified)

	return entryToRecord(entry), nil
}

// ReverifyEntry re-runs the chain check with the submission-time parameters and
// overwrites the verdict. Idempotent; no side effects beyond the entry's own fields.
func (l *Lottery) ReverifyEntry(ctx context.Context, roundID, signature string) (EntryRecord, error) {
	round, err := l.getRound(ctx, roundID)
	if err != nil {
		return EntryRecord{}, err
	}

	entry, err := l.entries.GetByRoundSignature(ctx, roundID, signature)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("get entry: %w", err)
	}

	verified := l.verifier.VerifySignature(ctx, round.Network, signature, entry.WalletAddress, round.TreasuryAddress)

	updated, err := l.entries.SetVerified(ctx, entry.ID, verified)
	if err != nil {
		return EntryRecord{}, fmt.Errorf("set entry verified: %w", err)
	}

	l.logs.Infow("entry re-verified", "round_id", roundID, "signature", signature, "verified", verified)

	return entryToRecord(updated), nil
}

// Draw selects one winner uniformly at random among verified entries and closes
// the round. The close is a single conditional update guarded by is_active, so
// among any number of concurrent draws exactly one wins and the rest observe a
// closed round.
func (l *Lottery) Draw(ctx context.Context, roundID string) (DrawResult, error) {
	round, err := l.getRound(ctx, roundID)
	if err != nil {
		return DrawResult{}, err
	}
	if !round.IsActive {
		return DrawResult{}, ErrRoundClosed
	}

	eligible, err := l.entries.ListVerified(ctx, roundID)
	if err != nil {
		return DrawResult{}, fmt.Errorf("list verified entries: %w", err)
	}
	if len(eligible) == 0 {
		return DrawResult{}, ErrNoEligibleEntries
	}

	// Uniform over entries, not wallets: a wallet with several verified
	// entries gets proportionally more chances.
	winner := eligible[rand.IntN(len(eligible))]

	closed, err := l.rounds.Close(ctx, roundID, winner.WalletAddress, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrRoundClosed) {
			return DrawResult{}, ErrRoundClosed
		}
		return DrawResult{}, fmt.Errorf("close round: %w", err)
	}

	l.logs.Infow("winner drawn",
		"round_id", roundID,
		"winner", winner.WalletAddress,
		"eligible_entries", len(eligible))

	return DrawResult{
		Round: roundToRecord(closed),
		Winner: WinnerRecord{
			WalletAddress: winner.WalletAddress,
			TxSignature:   winner.TxSignature,
		},
	}, nil
}

func (l *Lottery) getRound(ctx context.Context, roundID string) (repository.Round, error) {
	round, err := l.rounds.GetByRoundID(ctx, roundID)
	if err != nil {
		if errors.Is(err, repository.ErrRoundNotFound) {
			return repository.Round{}, ErrRoundNotFound
		}
		return repository.Round{}, fmt.Errorf("get round: %w", err)
	}
	return round, nil
}

func roundToRecord(round repository.Round) RoundRecord {
	return RoundRecord{
		ID:               round.ID,
		RoundID:          round.RoundID,
		IsActive:         round.IsActive,
		EntryFeeLamports: round.EntryFeeLamports,
		TreasuryAddress:  round.TreasuryAddress,
		Network:          round.Network,
		WinnerAddress:    round.WinnerAddress,
		DrawnAt:          round.DrawnAt,
		CreatedAt:        round.CreatedAt,
		UpdatedAt:        round.UpdatedAt,
	}
}

func entryToRecord(entry repository.Entry) EntryRecord {
	return EntryRecord{
		ID:            entry.ID,
		RoundID:       entry.RoundID,
		WalletAddress: entry.WalletAddress,
		TxSignature:   entry.TxSignature,
		Verified:      entry.Verified,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}
