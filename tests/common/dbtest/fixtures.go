//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"canteen-reservation/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestStudentPassword is the plaintext behind every seeded account.
const TestStudentPassword = "password123"

var (
	hashOnce       sync.Once
	seededPassHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := password.HashPassword(TestStudentPassword)
		require.NoError(t, err)
		seededPassHash = hash
	})
	return seededPassHash
}

func CreateTestStudent(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	studentID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO students (id, name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 ON CONFLICT (email) WHERE is_active DO NOTHING`,
		studentID, "Student "+email, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM students WHERE email = $1 AND is_active", email).Scan(&studentID)
	}

	return studentID
}

// CreateTestCanteen seeds a canteen open 07:00-10:00, 11:30-14:30 and
// 18:00-21:00.
func CreateTestCanteen(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	canteenID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO canteens (id, name, location, capacity)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		canteenID, name, "Campus", capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM canteens WHERE name = $1", name).Scan(&canteenID)
		return canteenID
	}

	hours := []struct {
		meal     string
		from, to int
	}{
		{"breakfast", 7 * 60, 10 * 60},
		{"lunch", 11*60 + 30, 14*60 + 30},
		{"dinner", 18 * 60, 21 * 60},
	}
	for _, h := range hours {
		_, err := db.Exec(ctx,
			`INSERT INTO canteen_working_hours (canteen_id, meal, start_min, end_min)
			 VALUES ($1, $2, $3, $4)`,
			canteenID, h.meal, h.from, h.to)
		require.NoError(t, err)
	}

	return canteenID
}

func CreateTestRestriction(t *testing.T, db DBLike, studentID uuid.UUID, startsAt, endsAt time.Time) uuid.UUID {
	t.Helper()

	restrictionID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO restrictions (id, student_id, reason, starts_at, ends_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		restrictionID, studentID, "test restriction", startsAt, endsAt)
	require.NoError(t, err)

	return restrictionID
}

func CreateTestReservation(t *testing.T, db DBLike, studentID, canteenID uuid.UUID, date time.Time, startMin, durationMin int, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, student_id, canteen_id, slot_date, start_min, duration_min, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, studentID, canteenID, date, startMin, durationMin, status)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var buildErr error
	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			buildErr = err
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				buildErr = err
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			buildErr = rows.Err()
			return
		}
		if len(tables) == 0 {
			truncateSQL = "SELECT 1"
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
	})
	if buildErr != nil {
		return buildErr
	}
	if truncateSQL == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
