// README: Estimate history backed by PostgreSQL.
package estimate

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxRecent caps how many history rows one Recent call returns.
const MaxRecent = 100

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append inserts e and fills in its ID and CreatedAt.
func (s *Store) Append(ctx context.Context, e *Entry) error {
	return s.db.QueryRow(ctx, `
		INSERT INTO estimates (
			caller_id, from_iata, to_iata, airline_id,
			distance_km, co2_emissions_kg, duration_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		e.CallerID, e.FromIATA, e.ToIATA, e.AirlineID,
		e.DistanceKm, e.CO2EmissionsKg, e.DurationMinutes,
	).Scan(&e.ID, &e.CreatedAt)
}

// Recent returns callerID's newest entries first.
func (s *Store) Recent(ctx context.Context, callerID string, limit int) ([]Entry, error) {
	limit = clampLimit(limit)
	rows, err := s.db.Query(ctx, `
		SELECT id, caller_id, from_iata, to_iata, airline_id,
		       distance_km, co2_emissions_kg, duration_minutes, created_at
		FROM estimates
		WHERE caller_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, callerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.CallerID, &e.FromIATA, &e.ToIATA, &e.AirlineID,
			&e.DistanceKm, &e.CO2EmissionsKg, &e.DurationMinutes, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > MaxRecent {
		return MaxRecent
	}
	return limit
}
