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

	"stayspots/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		passwordHash, err = password.HashPassword(TestPassword)
		require.NoError(t, err)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, first_name, last_name, email, username, password_hash) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, "Avery", "Lane", email, username, testPasswordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSpot(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO spots (id, owner_id, street, city, state, country, lat, lng, name, description, price)
		 VALUES ($1, $2, '123 Waterfront Ave', 'Portland', 'Oregon', 'United States', 45.523, -122.676, $3, 'Bright loft a block from the river.', 180.50)`,
		spotID, ownerID, name)
	require.NoError(t, err)

	return spotID
}

func CreateTestBooking(t *testing.T, db DBLike, spotID, userID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, spot_id, user_id, start_date, end_date) VALUES ($1, $2, $3, $4, $5)",
		bookingID, spotID, userID, start, end)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReview(t *testing.T, db DBLike, spotID, userID uuid.UUID, stars int, body string) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO reviews (id, spot_id, user_id, stars, body) VALUES ($1, $2, $3, $4, $5)",
		reviewID, spotID, userID, stars, body)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
