// README: Lookup-quota store tests against Postgres (lazy daily reset and boundary logic).
package quota

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestUseLookupCrossDayReset verifies that a caller with 0 lookups left from a previous day
// is reset and the request succeeds.
func TestUseLookupCrossDayReset(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO lookup_usage VALUES ('user_reset', 0, '2000-01-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Use(ctx, "user_reset"); err != nil {
		t.Fatalf("Use after cross-day reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT lookups_remaining FROM lookup_usage WHERE uid = 'user_reset'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultDailyLookups-1 {
		t.Fatalf("expected %d lookups remaining, got %d", DefaultDailyLookups-1, remaining)
	}
}

// TestUseLookupExhausted verifies that a caller with 0 lookups today is blocked.
func TestUseLookupExhausted(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx,
		"INSERT INTO lookup_usage (uid, lookups_remaining, last_reset_day) VALUES ('user_zero', 0, TO_CHAR(NOW() AT TIME ZONE 'UTC', 'YYYY-MM-DD'))",
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Use(ctx, "user_zero"); err != ErrQuotaExceeded {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

// TestUseLookupNewUser verifies that an unknown caller is initialised on first call.
func TestUseLookupNewUser(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if err := svc.Use(ctx, "user_new"); err != nil {
		t.Fatalf("Use for new user: %v", err)
	}

	store := NewStore(db, DefaultDailyLookups)
	remaining, err := store.Remaining(ctx, "user_new")
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if remaining != DefaultDailyLookups-1 {
		t.Fatalf("expected %d lookups remaining after first use, got %d", DefaultDailyLookups-1, remaining)
	}
}

// setupTestService creates a postgres-backed Service for integration tests.
// It skips the test when ECOFLY_TEST_DSN is not set.
func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("ECOFLY_TEST_DSN")
	if dsn == "" {
		t.Skip("ECOFLY_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE lookup_usage"); err != nil {
		t.Fatalf("truncate lookup_usage: %v", err)
	}

	return NewService(NewStore(db, DefaultDailyLookups)), db
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
