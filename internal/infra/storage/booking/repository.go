package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres при нарушении уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Уникальный индекс на (booking_link, booking_date, start_time, end_time)
// гарантирует не более одного бронирования на диапазон независимо от
// чередования чтений и записей; нарушение транслируется в ErrDuplicateBooking.
//
// Внутри сериализуемой транзакции (через context) запись выполняется
// после повторной проверки доступности - см. usecase/create_booking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_link",
			"booking_date",
			"start_time",
			"end_time",
		).
		Values(
			booking.BookingLink,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		// Ошибка драйвера остается в цепочке - txmanager по ней
		// распознает конфликт сериализации
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByLinkAndDate получает все бронирования по ссылке на конкретную дату,
// отсортированные по времени начала.
// Внутри транзакции добавляется FOR UPDATE - защита от гонки двух
// одновременных бронирований одного диапазона.
func (r *Repository) GetByLinkAndDate(ctx context.Context, bookingLink string, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_link",
		"booking_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_link": bookingLink}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLinkAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLinkAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByLink получает все бронирования по ссылке (история для владельца),
// отсортированные по дате и времени начала.
func (r *Repository) GetByLink(ctx context.Context, bookingLink string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_link",
		"booking_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_link": bookingLink}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLink - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLink - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.BookingLink,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
