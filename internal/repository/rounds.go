package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solottery/internal/db"

	"github.com/google/uuid"
)

var ErrRoundExists error = errors.New("round already exists")
var ErrRoundNotFound error = errors.New("round not found")
var ErrRoundClosed error = errors.New("round is closed")

type RoundRepository struct {
	db Storage
}

func NewRoundRepository(storage Storage) *RoundRepository {
	return &RoundRepository{
		db: storage,
	}
}

// Create persists a new open round. Duplicate round ids surface as ErrRoundExists
// via the unique index, never via a check-then-insert.
func (r *RoundRepository) Create(ctx context.Context, round Round) (Round, error) {
	now := time.Now().UTC()
	round.ID = uuid.NewString()
	round.IsActive = true
	round.WinnerAddress = nil
	round.DrawnAt = nil
	round.CreatedAt = now
	round.UpdatedAt = now

	if err := r.db.Insert(ctx, &round); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return Round{}, ErrRoundExists
		}
		return Round{}, fmt.Errorf("insert round: %w", err)
	}

	return round, nil
}

func (r *RoundRepository) GetByRoundID(ctx context.Context, roundID string) (Round, error) {
	var round Round
	err := r.db.GetOneBy(ctx, "round_id", roundID, &round)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Round{}, ErrRoundNotFound
		}
		return Round{}, fmt.Errorf("get round by round_id: %w", err)
	}

	return round, nil
}

func (r *RoundRepository) List(ctx context.Context) ([]Round, error) {
	rounds := []Round{}
	err := r.db.GetAllWhere(ctx, nil, "created_at desc", &rounds)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	return rounds, nil
}

// Close transitions the round to drawn in a single conditional update guarded by
// is_active. When a concurrent draw already closed the round the update matches
// zero rows and ErrRoundClosed is returned.
func (r *RoundRepository) Close(ctx context.Context, roundID, winnerAddress string, drawnAt time.Time) (Round, error) {
	affected, err := r.db.UpdateWhere(ctx, &Round{},
		map[string]any{"round_id": roundID, "is_active": true},
		map[string]any{
			"winner_address": winnerAddress,
			"drawn_at":       drawnAt,
			"is_active":      false,
			"updated_at":     drawnAt,
		})
	if err != nil {
		return Round{}, fmt.Errorf("close round: %w", err)
	}
	if affected == 0 {
		return Round{}, ErrRoundClosed
	}

	return r.GetByRoundID(ctx, roundID)
}
