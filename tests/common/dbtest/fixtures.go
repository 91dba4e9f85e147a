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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProperty(t *testing.T, db DBLike, ownerID uuid.UUID, name string, maxGuests int) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO properties (id, owner_id, name, max_guests, price_per_night_cents, is_available) VALUES ($1, $2, $3, $4, 12000, true)",
		propertyID, ownerID, name, maxGuests)
	require.NoError(t, err)

	return propertyID
}

func CreateTestBooking(t *testing.T, db DBLike, propertyID, clientID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	_, err := db.Exec(ctx, `INSERT INTO bookings
		(id, property_id, client_id, check_in, check_out, guest_count, status, total_price_cents, guest_name, contact, travel_type)
		VALUES ($1, $2, $3, $4, $5, 2, $6, $7, 'Seed Guest', 'seed@example.com', 'friends')`,
		bookingID, propertyID, clientID, checkIn, checkOut, status, nights*12000)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
