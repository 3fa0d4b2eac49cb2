//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can be seeded
// inside a test transaction too.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBLike = (*pgxpool.Pool)(nil)
	_ DBLike = pgx.Tx(nil)
)

// PasswordHash is bcrypt("password123").
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active user with a profile, or returns the id of
// the existing one.
func CreateTestUser(t *testing.T, db DBLike, email, name string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, PasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
		return userID
	}

	_, err = db.Exec(ctx, "INSERT INTO profiles (id, name) VALUES ($1, $2)", userID, name)
	require.NoError(t, err)

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// ReservationFixture describes a reservation row. Dates are "YYYY-MM-DD".
type ReservationFixture struct {
	PropertyID  string
	UserID      uuid.UUID
	ClientName  string
	ClientPhone string
	Start       string
	End         string
	TotalCents  int64
}

func CreateTestReservation(t *testing.T, db DBLike, f ReservationFixture) uuid.UUID {
	t.Helper()

	if f.ClientName == "" {
		f.ClientName = "Ana Pérez"
	}
	if f.ClientPhone == "" {
		f.ClientPhone = "+54 9 11 5555-1234"
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, property_id, client_name, client_phone, start_date, end_date, total_amount, user_id)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7::numeric / 100, $8)`,
		id, f.PropertyID, f.ClientName, f.ClientPhone, f.Start, f.End, f.TotalCents, f.UserID)
	require.NoError(t, err)

	return id
}

func CreateTestPayment(t *testing.T, db DBLike, reservationID uuid.UUID, kind string, cents int64, paidAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO payment_methods (id, reservation_id, type, amount, payment_date)
		VALUES ($1, $2, $3, $4::numeric / 100, $5)`,
		id, reservationID, kind, cents, paidAt)
	require.NoError(t, err)

	return id
}

func CountPayments(t *testing.T, db DBLike, reservationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM payment_methods WHERE reservation_id = $1", reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose's version table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
