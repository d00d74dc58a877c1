package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
)

// ErrIdempotencyKeyExists is returned by Reserve when the outlet already holds the key
var ErrIdempotencyKeyExists = errors.New("idempotency key already exists")

type IdempotencyRepository interface {
	GetByKey(ctx context.Context, outletID uuid.UUID, key string) (*entity.IdempotencyKey, error)
	// Reserve inserts a pending key. Concurrent reservations of the same key
	// at the same outlet fail with ErrIdempotencyKeyExists.
	Reserve(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Complete stores the response of a reserved key
	Complete(ctx context.Context, id uuid.UUID, code int, body string, expiresAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes keys that expired before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
