package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solottery/internal/db"

	"github.com/google/uuid"
)

var ErrEntryExists error = errors.New("transaction signature already submitted")
var ErrEntryNotFound error = errors.New("entry not found")

type EntryRepository struct {
	db Storage
}

func NewEntryRepository(storage Storage) *EntryRepository {
	return &EntryRepository{
		db: storage,
	}
}

// Create persists a new entry. The unique index on tx_signature makes two
// concurrent submissions of the same signature yield exactly one success.
func (r *EntryRepository) Create(ctx context.Context, entry Entry) (Entry, error) {
	now := time.Now().UTC()
	entry.ID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := r.db.Insert(ctx, &entry); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return Entry{}, ErrEntryExists
		}
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	return entry, nil
}

// GetBySignature looks a signature up across all rounds.
func (r *EntryRepository) GetBySignature(ctx context.Context, signature string) (Entry, error) {
	var entry Entry
	err := r.db.GetOneBy(ctx, "tx_signature", signature, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("get entry by signature: %w", err)
	}

	return entry, nil
}

func (r *EntryRepository) GetByRoundSignature(ctx context.Context, roundID, signature string) (Entry, error) {
	var entry Entry
	err := r.db.GetOneWhere(ctx, map[string]any{"round_id": roundID, "tx_signature": signature}, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("get entry by round and signature: %w", err)
	}

	return entry, nil
}

func (r *EntryRepository) List(ctx context.Context, roundID string) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.GetAllWhere(ctx, map[string]any{"round_id": roundID}, "created_at asc", &entries)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

func (r *EntryRepository) ListVerified(ctx context.Context, roundID string) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.GetAllWhere(ctx, map[string]any{"round_id": roundID, "verified": true}, "created_at asc", &entries)
	if err != nil {
		return nil, fmt.Errorf("list verified entries: %w", err)
	}

	return entries, nil
}

// SetVerified overwrites the verification verdict. Entries are never deleted;
// the flag may flip in either direction on re-check.
func (r *EntryRepository) SetVerified(ctx context.Context, entryID string, verified bool) (Entry, error) {
	_, err := r.db.UpdateWhere(ctx, &Entry{},
		map[string]any{"id": entryID},
		map[string]any{
			"verified":   verified,
			"updated_at": time.Now().UTC(),
		})
	if err != nil {
		return Entry{}, fmt.Errorf("set entry verified: %w", err)
	}

	var entry Entry
	if err := r.db.GetOneBy(ctx, "id", entryID, &entry); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("get entry by id: %w", err)
	}

	return entry, nil
}
