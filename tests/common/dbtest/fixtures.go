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

func CreateTestProfile(t *testing.T, db DBLike, externalID, role string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO user_profiles (id, user_id, role) VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING",
		profileID, externalID, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM user_profiles WHERE user_id = $1", externalID).Scan(&profileID)
	}

	return profileID
}

func CreateOpenDayEvent(t *testing.T, db DBLike, id string, capacity *int32, open bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO open_day_events (id, university_id, type, title, starts_at, ends_at, capacity, registration_open)
		VALUES ($1, 'u-01', 'open_doors', 'Open Doors Day', now() + interval '7 days', now() + interval '7 days 4 hours', $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		id, capacity, open)
	require.NoError(t, err)
}

// inserts the catalog rows shared by all tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO universities (id, title, city, has_dormitory, has_open_day) VALUES
		    ('u-01', 'Test University', 'Boston', true, true),
		    ('u-02', 'Another University', 'Chicago', false, false)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO programs (id, university_id, title, level, format, has_budget) VALUES
		    ('p-01', 'u-01', 'Computer Science', 'bachelor', 'full_time', true),
		    ('p-02', 'u-02', 'Economics', 'bachelor', 'full_time', false)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO campus_events (id, title, category, starts_at, ends_at, status) VALUES
		    ('ev-01', 'Spring Hackathon', 'hackathon', now() + interval '14 days', now() + interval '15 days', 'scheduled'),
		    ('ev-02', 'Last Year Fair', 'fair', now() - interval '30 days', now() - interval '29 days', 'finished')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
