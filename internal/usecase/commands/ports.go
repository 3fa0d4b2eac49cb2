package commands

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/pkg/jwt"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationCache is the part of the read-side cache the write side drives.
// Mutations never patch it; they only ask for a full reload.
type ReservationCache interface {
	Snapshot(ctx context.Context) ([]queries.ReservationRecord, error)
	Refresh(ctx context.Context) error
}

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}
