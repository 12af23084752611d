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

// Fixed catalog ids so tests can reference seeded rooms directly.
var (
	HotelSeasideID = uuid.MustParse("3fa11a4e-0c26-4a9c-a12e-1c8f6c9a0001")
	HotelCityID    = uuid.MustParse("3fa11a4e-0c26-4a9c-a12e-1c8f6c9a0002")

	// 5000 cents per night, the usual room under test
	RoomSeaViewID = uuid.MustParse("9b2d54c0-55e1-4f83-9d51-b3e0a7f10001")
	// 10000 cents per night
	RoomPenthouseID = uuid.MustParse("9b2d54c0-55e1-4f83-9d51-b3e0a7f10002")
	// 2500 cents per night, pets allowed
	RoomBudgetID = uuid.MustParse("9b2d54c0-55e1-4f83-9d51-b3e0a7f10003")
)

// inserts the hotel and room catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name) VALUES
		    ($1, 'Seaside Resort'),
		    ($2, 'City Center Inn')
		ON CONFLICT (id) DO NOTHING;
	`, HotelSeasideID, HotelCityID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, hotel_id, name, beds, pets_allowed, price_in_cents) VALUES
		    ($1, $4, 'Sea View', 2, false, 5000),
		    ($2, $4, 'Penthouse', 4, false, 10000),
		    ($3, $5, 'Budget Single', 1, true, 2500)
		ON CONFLICT (id) DO NOTHING;
	`, RoomSeaViewID, RoomPenthouseID, RoomBudgetID, HotelSeasideID, HotelCityID)
	if err != nil {
		return err
	}

	return nil
}

func CreateTestCustomer(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO customers (id, email, billing_street, billing_street_add, billing_city, billing_postcode, billing_country)
		VALUES ($1, $2, '1 Main St', '', 'Berlin', '10115', 'DE')`,
		customerID, email)
	require.NoError(t, err)

	return customerID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
