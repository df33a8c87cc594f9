package postgres

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/usecase/views"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.description, i.available, i.request_id,
	       o.id, o.name, o.email,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users o ON o.id = i.owner_id
	JOIN users u ON u.id = b.booker_id`

type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

func scanBookingView(row pgx.Row) (*views.BookingView, error) {
	var v views.BookingView
	var status string
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &status,
		&v.Item.ID, &v.Item.Name, &v.Item.Description, &v.Item.Available, &v.Item.RequestID,
		&v.Item.Owner.ID, &v.Item.Owner.Name, &v.Item.Owner.Email,
		&v.Booker.ID, &v.Booker.Name, &v.Booker.Email,
	)
	if err != nil {
		return nil, err
	}
	v.Status = booking.Status(status)
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*views.BookingView, error) {
	defer rows.Close()

	result := make([]*views.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *BookingStore) Save(ctx context.Context, b *booking.Booking) (*views.BookingView, error) {
	const q = `
		INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		return nil, wrapPgErr("failed to insert booking", err)
	}
	return r.FindByID(ctx, id)
}

func (r *BookingStore) UpdateStatus(ctx context.Context, id int64, status booking.Status) (*views.BookingView, error) {
	const q = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, status.String())
	if err != nil {
		return nil, wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, wrapPgErr("booking not found", pgx.ErrNoRows)
	}
	return r.FindByID(ctx, id)
}

func (r *BookingStore) FindByID(ctx context.Context, id int64) (*views.BookingView, error) {
	q := bookingViewSelect + `
	WHERE b.id = $1`

	v, err := scanBookingView(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapPgErr("booking not found", err)
	}
	return v, nil
}

func (r *BookingStore) FindByBookerID(ctx context.Context, bookerID int64) ([]*views.BookingView, error) {
	q := bookingViewSelect + `
	WHERE b.booker_id = $1
	ORDER BY b.id`

	rows, err := r.pool.Query(ctx, q, bookerID)
	if err != nil {
		return nil, wrapPgErr("failed to list bookings by booker", err)
	}
	result, err := collectBookingViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan booking rows", err)
	}
	return result, nil
}

func (r *BookingStore) FindByItemOwnerID(ctx context.Context, ownerID int64) ([]*views.BookingView, error) {
	q := bookingViewSelect + `
	WHERE i.owner_id = $1
	ORDER BY b.id`

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, wrapPgErr("failed to list bookings by item owner", err)
	}
	result, err := collectBookingViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan booking rows", err)
	}
	return result, nil
}

func (r *BookingStore) FindByItemAndBooker(ctx context.Context, itemID, bookerID int64) (*views.BookingView, error) {
	q := bookingViewSelect + `
	WHERE b.item_id = $1 AND b.booker_id = $2
	ORDER BY b.id
	LIMIT 1`

	v, err := scanBookingView(r.pool.QueryRow(ctx, q, itemID, bookerID))
	if err != nil {
		return nil, wrapPgErr("no booking for item and booker", err)
	}
	return v, nil
}
