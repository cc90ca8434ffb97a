package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UseCase use case получения свободных диапазонов на дату
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных диапазонов:
// слоты по (ссылка, дата) минус существующие бронирования,
// по возрастанию времени начала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: link=%s, date=%s",
		req.BookingLink, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ссылки
	if _, err := uc.userRepo.GetByBookingLink(ctx, req.BookingLink); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableTimes: link=%s not found", req.BookingLink)
			return nil, ErrLinkNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to resolve link=%s: %v", req.BookingLink, err)
		return nil, fmt.Errorf("%w: failed to resolve link: %v", ErrInternal, err)
	}

	// 3. Получаем слоты на дату
	slots, err := uc.slotRepo.GetByLinkAndDate(ctx, req.BookingLink, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Получаем существующие бронирования на дату
	bookings, err := uc.bookingRepo.GetByLinkAndDate(ctx, req.BookingLink, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Вычисляем разность множеств
	times := availableTimes(slots, bookings)

	uc.logger.Info("GetAvailableTimes: link=%s, date=%s: %d of %d slots available",
		req.BookingLink, req.Date.Format(domain.DateFormat), len(times), len(slots))

	return &Response{
		BookingLink: req.BookingLink,
		Date:        req.Date,
		Times:       times,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingLink == "" {
		return fmt.Errorf("%w: bookingLink is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
