package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
)

// SeedSlots inserts the generated catalog. The unique constraint on
// (start_at, end_at) plus ON CONFLICT DO NOTHING makes re-seeding idempotent:
// running it twice never produces duplicate intervals.
func (s *Store) SeedSlots(ctx context.Context, slots []model.Slot) error {
	for _, sl := range slots {
		id := sl.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := s.pool.Exec(ctx,
			`INSERT INTO slots (id, start_at, end_at) VALUES ($1,$2,$3)
			 ON CONFLICT (start_at, end_at) DO NOTHING`,
			id, sl.StartAt, sl.EndAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// AvailableSlots returns every slot no booking references, ascending by
// start time. Reads committed state directly; nothing is cached.
func (s *Store) AvailableSlots(ctx context.Context) ([]model.Slot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT s.id, s.start_at, s.end_at
		 FROM slots s
		 LEFT JOIN bookings b ON b.slot_id = s.id
		 WHERE b.id IS NULL
		 ORDER BY s.start_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Slot
	for rows.Next() {
		var sl model.Slot
		if err := rows.Scan(&sl.ID, &sl.StartAt, &sl.EndAt); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}
