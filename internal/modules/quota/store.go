package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles lookup_usage persistence.
type Store struct {
	db    *pgxpool.Pool
	daily int
	now   func() time.Time
}

// NewStore returns a Store granting daily lookups per caller per UTC day.
func NewStore(db *pgxpool.Pool, daily int) *Store {
	if daily <= 0 {
		daily = DefaultDailyLookups
	}
	return &Store{db: db, daily: daily, now: time.Now}
}

func (s *Store) today() string {
	return s.now().UTC().Format(dayLayout)
}

// UseLookup atomically checks the daily allowance and deducts one lookup.
// It resets the counter when last_reset_day is behind today.
// Returns ErrQuotaExceeded when 0 rows are updated (allowance spent or caller absent).
func (s *Store) UseLookup(ctx context.Context, uid string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE lookup_usage SET
			lookups_remaining = CASE WHEN last_reset_day != $1 THEN $2 - 1 ELSE lookups_remaining - 1 END,
			last_reset_day = $1
		WHERE uid = $3 AND (last_reset_day < $1 OR lookups_remaining > 0)
	`, s.today(), s.daily, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureUser inserts a lookup_usage row for uid with the full daily allowance.
// Existing rows are left untouched (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO lookup_usage (uid, lookups_remaining, last_reset_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, s.daily, s.today())
	return err
}

// Remaining reports the lookups left today, counting a stale row as a full allowance.
func (s *Store) Remaining(ctx context.Context, uid string) (int, error) {
	var (
		remaining int
		day       string
	)
	err := s.db.QueryRow(ctx,
		`SELECT lookups_remaining, last_reset_day FROM lookup_usage WHERE uid = $1`, uid,
	).Scan(&remaining, &day)
	if err != nil {
		return 0, err
	}
	if day != s.today() {
		return s.daily, nil
	}
	return remaining, nil
}
