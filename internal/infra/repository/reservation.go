package repository

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `
	id, customer_name, customer_email, customer_phone, number_of_guests,
	reservation_date, reservation_time, reservation_end_time, menu_type,
	theme, table_preference, special_requests, dietary_restrictions,
	status, google_event_id, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (
			id, customer_name, customer_email, customer_phone, number_of_guests,
			reservation_date, reservation_time, reservation_end_time, menu_type,
			theme, table_preference, special_requests, dietary_restrictions,
			status, google_event_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		res.ID(),
		res.Customer().Name(),
		res.Customer().Email().Value(),
		res.Customer().Phone(),
		res.NumberOfGuests(),
		pgconv.DateToPgtype(res.Date()),
		res.StartTime(),
		pgconv.StringPtrToPgtype(res.EndTime()),
		res.MenuType(),
		pgconv.StringPtrToPgtype(res.Theme()),
		pgconv.StringPtrToPgtype(res.TablePreference()),
		pgconv.StringPtrToPgtype(res.SpecialRequests()),
		pgconv.StringPtrToPgtype(res.DietaryRestrictions()),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.GoogleEventID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT`+reservationColumns+` FROM reservations WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET
			customer_name = $2, customer_email = $3, customer_phone = $4,
			number_of_guests = $5, reservation_date = $6, reservation_time = $7,
			reservation_end_time = $8, menu_type = $9, theme = $10,
			table_preference = $11, special_requests = $12,
			dietary_restrictions = $13, status = $14, google_event_id = $15,
			updated_at = now()
		WHERE id = $1`,
		res.ID(),
		res.Customer().Name(),
		res.Customer().Email().Value(),
		res.Customer().Phone(),
		res.NumberOfGuests(),
		pgconv.DateToPgtype(res.Date()),
		res.StartTime(),
		pgconv.StringPtrToPgtype(res.EndTime()),
		res.MenuType(),
		pgconv.StringPtrToPgtype(res.Theme()),
		pgconv.StringPtrToPgtype(res.TablePreference()),
		pgconv.StringPtrToPgtype(res.SpecialRequests()),
		pgconv.StringPtrToPgtype(res.DietaryRestrictions()),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.GoogleEventID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// OccupancyByDate sums the party sizes of PENDING and CONFIRMED reservations
// on the given date, grouped by start-time label. This is the local-store
// evidence used when the external calendar is unreachable.
func (r *ReservationRepository) OccupancyByDate(ctx context.Context, date time.Time) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT reservation_time, COALESCE(SUM(number_of_guests), 0)
		FROM reservations
		WHERE reservation_date = $1 AND status IN ('PENDING', 'CONFIRMED')
		GROUP BY reservation_time`,
		pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation occupancy", err)
	}
	defer rows.Close()

	occupied := make(map[string]int)
	for rows.Next() {
		var label string
		var guests int64
		if err := rows.Scan(&label, &guests); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation occupancy", err)
		}
		occupied[label] = int(guests)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation occupancy", err)
	}
	return occupied, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id                  uuid.UUID
		customerName        string
		customerEmail       string
		customerPhone       string
		numberOfGuests      int
		date                pgtype.Date
		startTime           string
		endTime             pgtype.Text
		menuType            string
		theme               pgtype.Text
		tablePreference     pgtype.Text
		specialRequests     pgtype.Text
		dietaryRestrictions pgtype.Text
		status              string
		googleEventID       pgtype.Text
		createdAt           pgtype.Timestamptz
		updatedAt           pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &customerName, &customerEmail, &customerPhone, &numberOfGuests,
		&date, &startTime, &endTime, &menuType,
		&theme, &tablePreference, &specialRequests, &dietaryRestrictions,
		&status, &googleEventID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	email, err := reservation.NewEmail(customerEmail)
	if err != nil {
		return nil, err
	}
	customer, err := reservation.NewCustomer(customerName, email, customerPhone)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id,
		customer,
		numberOfGuests,
		pgconv.DateFromPgtype(date),
		startTime,
		pgconv.StringPtrFromPgtype(endTime),
		menuType,
		pgconv.StringPtrFromPgtype(theme),
		pgconv.StringPtrFromPgtype(tablePreference),
		pgconv.StringPtrFromPgtype(specialRequests),
		pgconv.StringPtrFromPgtype(dietaryRestrictions),
		reservation.Status(status),
		pgconv.StringPtrFromPgtype(googleEventID),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
