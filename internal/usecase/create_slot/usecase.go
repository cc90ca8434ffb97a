package create_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UseCase use case создания слота доступности
type UseCase struct {
	slotRepo     SlotRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания слота.
// Слот привязывается к ссылке бронирования владельца; уникальность
// (ссылка, дата, время начала) обеспечивается индексом в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: owner=%d, date=%s, start=%s, end=%s",
		req.OwnerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация временного диапазона (конец строго позже начала)
	if err := validateTimeRange(req); err != nil {
		uc.logger.Warn("CreateSlot: invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// 3. Валидация даты (не раньше сегодняшней)
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateSlot: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем владельца - ссылка бронирования хранится в его записи
	owner, err := uc.userRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateSlot: owner id=%d not found", req.OwnerID)
			return nil, ErrOwnerNotFound
		}
		uc.logger.Error("CreateSlot: failed to get owner id=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
	}

	// 5. Создаем слот; дубликат (ссылка, дата, начало) отклонит БД
	slot := &domain.Slot{
		OwnerID:     owner.ID,
		BookingLink: owner.BookingLink,
		Date:        truncateToDate(req.Date),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	created, err := uc.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			uc.logger.Warn("CreateSlot: duplicate slot for link=%s, date=%s, start=%s",
				owner.BookingLink, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrDuplicateSlot
		}
		uc.logger.Error("CreateSlot: failed to create slot: %v", err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSlot: successfully created slot id=%d for link=%s", created.ID, created.BookingLink)

	return &Response{
		ID:          created.ID,
		OwnerID:     created.OwnerID,
		BookingLink: created.BookingLink,
		Date:        created.Date,
		StartTime:   created.StartTime,
		EndTime:     created.EndTime,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
