package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UseCase use case бронирования диапазона посетителем
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования.
//
// Доступность, которую посетитель видел перед подтверждением, - лишь
// снимок: между чтением и записью другой посетитель мог забронировать
// тот же диапазон. Поэтому доступность проверяется ПОВТОРНО в момент
// коммита, внутри сериализуемой транзакции по durable store:
//   - слоты и бронирования перечитываются с блокировкой (FOR UPDATE),
//   - диапазон должен соответствовать существующему слоту,
//   - диапазон не должен быть уже забронирован.
//
// Из двух одновременных попыток бронирования одного диапазона ровно одна
// завершается успехом, вторая получает ErrSlotNotAvailable. Уникальный
// индекс БД страхует тот же инвариант на последнем рубеже.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: link=%s, date=%s, range=%s",
		req.BookingLink, req.Date.Format(domain.DateFormat), req.TimeRange)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ссылки (вне транзакции - чистое чтение)
	if _, err := uc.userRepo.GetByBookingLink(ctx, req.BookingLink); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: link=%s not found", req.BookingLink)
			return nil, ErrLinkNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve link=%s: %v", req.BookingLink, err)
		return nil, fmt.Errorf("%w: failed to resolve link: %v", ErrInternal, err)
	}

	date := truncateToDate(req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Повторная проверка доступности и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Перечитываем слоты на дату (FOR UPDATE внутри транзакции)
		slots, err := uc.slotRepo.GetByLinkAndDate(txCtx, req.BookingLink, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slots: %v", err)
			// Цепочка ошибки сохраняется - DoSerializable повторяет
			// транзакцию при конфликте сериализации
			return fmt.Errorf("%w: failed to get slots: %w", ErrInternal, err)
		}

		// 3.2. Диапазон должен соответствовать существующему слоту
		if findMatchingSlot(slots, req.TimeRange) == nil {
			uc.logger.Warn("CreateBooking: no slot matches range=%s for link=%s, date=%s",
				req.TimeRange, req.BookingLink, date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.3. Перечитываем бронирования на дату (FOR UPDATE внутри транзакции)
		bookings, err := uc.bookingRepo.GetByLinkAndDate(txCtx, req.BookingLink, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 3.4. Диапазон не должен быть уже забронирован
		if isAlreadyBooked(bookings, req.TimeRange) {
			uc.logger.Warn("CreateBooking: range=%s already booked for link=%s, date=%s",
				req.TimeRange, req.BookingLink, date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.5. Записываем бронирование
		booking := &domain.Booking{
			BookingLink: req.BookingLink,
			Date:        date,
			StartTime:   req.TimeRange.Start,
			EndTime:     req.TimeRange.End,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс сработал - второй писатель проиграл гонку
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				uc.logger.Warn("CreateBooking: lost race for range=%s, link=%s, date=%s",
					req.TimeRange, req.BookingLink, date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for link=%s, date=%s, range=%s",
		result.ID, result.BookingLink, result.Date.Format(domain.DateFormat), result.TimeRange())

	return &Response{
		ID:          result.ID,
		BookingLink: result.BookingLink,
		Date:        result.Date,
		TimeRange:   result.TimeRange(),
		CreatedAt:   result.CreatedAt,
	}, nil
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
