package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres при нарушении уникального индекса
const pgUniqueViolation = "23505"

// usernameConstraint имя уникального индекса на users.username
const usernameConstraint = "users_username_key"

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с владельцами слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя с уникальной ссылкой бронирования
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"username",
			"password_hash",
			"booking_link",
		).
		Values(
			user.Username,
			user.PasswordHash,
			user.BookingLink,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			if pqErr.Constraint == usernameConstraint {
				return nil, ErrUsernameTaken
			}
			return nil, ErrDuplicateLink
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUsername получает пользователя по имени
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, "GetByUsername")
}

// GetByBookingLink получает пользователя по публичной ссылке бронирования.
// Используется для проверки существования ссылки: неизвестная ссылка
// транслируется выше в единый ответ "ссылка недействительна".
func (r *Repository) GetByBookingLink(ctx context.Context, bookingLink string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_link": bookingLink}, "GetByBookingLink")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"password_hash",
		"booking_link",
		"created_at",
		"updated_at",
	).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.BookingLink,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
