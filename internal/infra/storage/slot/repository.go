package slot

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

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот доступности.
// Уникальность (booking_link, date, start_time) обеспечивается индексом в БД;
// нарушение транслируется в ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"owner_id",
			"booking_link",
			"slot_date",
			"start_time",
			"end_time",
		).
		Values(
			slot.OwnerID,
			slot.BookingLink,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		// Ошибка драйвера остается в цепочке - txmanager по ней
		// распознает конфликт сериализации
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetByLinkAndDate получает все слоты по ссылке на конкретную дату,
// отсортированные по времени начала.
// Внутри транзакции добавляется FOR UPDATE для блокировки строк
// (используется usecase-ом создания бронирования).
func (r *Repository) GetByLinkAndDate(ctx context.Context, bookingLink string, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"owner_id",
		"booking_link",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("slots").
		Where(squirrel.Eq{"booking_link": bookingLink}).
		Where(squirrel.Eq{"slot_date": date}).
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

	return r.scanSlots(rows)
}

// GetUpcoming получает все слоты по ссылке с датой не раньше asOfDate,
// отсортированные по дате и времени начала (для страницы бронирования).
func (r *Repository) GetUpcoming(ctx context.Context, bookingLink string, asOfDate time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"booking_link",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("slots").
		Where(squirrel.Eq{"booking_link": bookingLink}).
		Where(squirrel.GtOrEq{"slot_date": asOfDate}).
		OrderBy("slot_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"booking_link",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.OwnerID,
		&slot.BookingLink,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.OwnerID,
			&slot.BookingLink,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
