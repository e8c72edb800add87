package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var _ domain.LedgerStore = (*PostgresLedger)(nil)

const uniqueViolation = "23505"

// PostgresLedger implements LedgerStore using PostgreSQL
type PostgresLedger struct {
	db *sqlx.DB
}

func NewPostgresLedger(db *sqlx.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

type postgresBooking struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	EventID     string    `db:"event_id"`
	TicketCount int       `db:"ticket_count"`
	TotalPrice  int64     `db:"total_price"`
	Currency    string    `db:"currency"`
	Status      string    `db:"status"`
	Reserved    bool      `db:"inventory_reserved"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	Version     int       `db:"version"`
}

type postgresPayment struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	Amount        int64     `db:"amount"`
	Currency      string    `db:"currency"`
	PaymentMethod string    `db:"payment_method"`
	TransactionID string    `db:"transaction_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	bookingColumns = `id, user_id, event_id, ticket_count, total_price, currency, status, inventory_reserved, created_at, updated_at, version`
	paymentColumns = `id, booking_id, amount, currency, payment_method, transaction_id, status, created_at`

	updateBookingStatusQuery = `
		UPDATE bookings
		SET status = :status, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`
)

// CreateBooking inserts a new booking, assigning its ID
func (r *PostgresLedger) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	if booking.ID.IsEmpty() {
		booking.ID = models.GenerateUUID()
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES (
			:id, :user_id, :event_id, :ticket_count, :total_price, :currency,
			:status, :inventory_reserved, :created_at, :updated_at, :version
		)`

	_, err := r.db.NamedExecContext(ctx, query, toPostgresBooking(booking))
	if err != nil {
		return errors.Wrap(err, "failed to insert booking")
	}

	return nil
}

func (r *PostgresLedger) GetBooking(ctx context.Context, id models.ID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var row postgresBooking
	err := r.db.GetContext(ctx, &row, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return row.toDomain(), nil
}

// UpdateBookingStatus applies the status change only if nobody else has written the row since it was read
func (r *PostgresLedger) UpdateBookingStatus(ctx context.Context, booking *domain.Booking) error {
	res, err := r.db.NamedExecContext(ctx, updateBookingStatusQuery, statusUpdateArgs(booking))
	if err != nil {
		return errors.Wrap(err, "failed to update booking")
	}

	return checkRowsAffected(res)
}

// ConfirmBooking updates the booking and inserts its payment in one transaction
func (r *PostgresLedger) ConfirmBooking(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.NamedExecContext(ctx, updateBookingStatusQuery, statusUpdateArgs(booking))
	if err != nil {
		return errors.Wrap(err, "failed to update booking")
	}

	if err := checkRowsAffected(res); err != nil {
		return err
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (
			:id, :booking_id, :amount, :currency, :payment_method,
			:transaction_id, :status, :created_at
		)`

	if _, err := tx.NamedExecContext(ctx, query, toPostgresPayment(payment)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrPaymentExists
		}
		return errors.Wrap(err, "failed to insert payment")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit booking confirmation")
	}

	return nil
}

// MarkInventoryReserved sets the reservation flag without a version bump
func (r *PostgresLedger) MarkInventoryReserved(ctx context.Context, id models.ID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET inventory_reserved = TRUE WHERE id = $1`, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to mark inventory reserved")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.Errorf("booking %s not found", id)
	}
	return nil
}

func (r *PostgresLedger) GetPaymentForBooking(ctx context.Context, bookingID models.ID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`

	var row postgresPayment
	err := r.db.GetContext(ctx, &row, query, bookingID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return row.toDomain(), nil
}

func (r *PostgresLedger) ListBookingsForUser(ctx context.Context, userID models.ID) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var rows []postgresBooking
	if err := r.db.SelectContext(ctx, &rows, query, userID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user ID")
	}

	bookings := make([]*domain.Booking, len(rows))
	for i := range rows {
		bookings[i] = rows[i].toDomain()
	}

	return bookings, nil
}

func statusUpdateArgs(booking *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"id":          booking.ID.String(),
		"status":      booking.Status.String(),
		"updated_at":  booking.Timestamps.UpdatedAt,
		"version":     booking.Version.Value,
		"old_version": booking.Version.Previous(),
	}
}

func checkRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

func toPostgresBooking(b *domain.Booking) *postgresBooking {
	return &postgresBooking{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		EventID:     b.EventID.String(),
		TicketCount: b.TicketCount,
		TotalPrice:  b.TotalPrice.Amount,
		Currency:    b.TotalPrice.Currency,
		Status:      b.Status.String(),
		Reserved:    b.InventoryReserved,
		CreatedAt:   b.Timestamps.CreatedAt,
		UpdatedAt:   b.Timestamps.UpdatedAt,
		Version:     b.Version.Value,
	}
}

func (row *postgresBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:                models.ID(row.ID),
		UserID:            models.ID(row.UserID),
		EventID:           models.ID(row.EventID),
		TicketCount:       row.TicketCount,
		TotalPrice:        models.NewMoney(row.TotalPrice, row.Currency),
		Status:            domain.BookingStatus(row.Status),
		InventoryReserved: row.Reserved,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		Version: models.Version{Value: row.Version},
	}
}

func toPostgresPayment(p *domain.Payment) *postgresPayment {
	return &postgresPayment{
		ID:            p.ID.String(),
		BookingID:     p.BookingID.String(),
		Amount:        p.Amount.Amount,
		Currency:      p.Amount.Currency,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}

func (row *postgresPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            models.ID(row.ID),
		BookingID:     models.ID(row.BookingID),
		Amount:        models.NewMoney(row.Amount, row.Currency),
		PaymentMethod: row.PaymentMethod,
		TransactionID: row.TransactionID,
		Status:        domain.PaymentStatus(row.Status),
		CreatedAt:     row.CreatedAt,
	}
}
