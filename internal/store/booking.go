package store

import (
	"context"

	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
)

// CreateBooking inserts without checking availability first. The
// bookings(slot_id) unique constraint is the authoritative conflict check:
// under concurrent attempts on one slot the database commits exactly one
// insert and rejects the rest, which surfaces here as ErrSlotTaken. A
// read-then-write check in front of this would reintroduce the race.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO bookings (id, user_id, slot_id) VALUES ($1,$2,$3)
		 RETURNING created_at`,
		b.ID, b.UserID, b.SlotID,
	).Scan(&b.CreatedAt)
	if uniqueViolation(err, "bookings_slot_id_key") {
		return ErrSlotTaken
	}
	return err
}

type BookingWithSlot struct {
	Booking model.Booking
	Slot    model.Slot
}

type BookingWithSlotUser struct {
	Booking model.Booking
	Slot    model.Slot
	User    model.User
}

func (s *Store) BookingsByUser(ctx context.Context, userID string) ([]BookingWithSlot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT b.id, b.user_id, b.slot_id, b.created_at,
		        s.id, s.start_at, s.end_at
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookingWithSlot
	for rows.Next() {
		var bs BookingWithSlot
		if err := rows.Scan(
			&bs.Booking.ID, &bs.Booking.UserID, &bs.Booking.SlotID, &bs.Booking.CreatedAt,
			&bs.Slot.ID, &bs.Slot.StartAt, &bs.Slot.EndAt,
		); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

func (s *Store) AllBookings(ctx context.Context) ([]BookingWithSlotUser, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT b.id, b.user_id, b.slot_id, b.created_at,
		        s.id, s.start_at, s.end_at,
		        u.id, u.name, u.email, u.role
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookingWithSlotUser
	for rows.Next() {
		var bu BookingWithSlotUser
		if err := rows.Scan(
			&bu.Booking.ID, &bu.Booking.UserID, &bu.Booking.SlotID, &bu.Booking.CreatedAt,
			&bu.Slot.ID, &bu.Slot.StartAt, &bu.Slot.EndAt,
			&bu.User.ID, &bu.User.Name, &bu.User.Email, &bu.User.Role,
		); err != nil {
			return nil, err
		}
		out = append(out, bu)
	}
	return out, rows.Err()
}
