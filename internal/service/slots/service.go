package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots/models"
)

// Service сервис для чтения расписания владельца
type Service struct {
	slotRepo     SlotRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListUpcoming возвращает предстоящие слоты по ссылке бронирования,
// сгруппированные по датам. Сегодняшние слоты входят в выдачу, прошедшие даты - нет.
func (s *Service) ListUpcoming(ctx context.Context, bookingLink string) (*models.SlotListResponse, error) {
	s.logger.Info("ListUpcoming: fetching slots for link=%s", bookingLink)

	if bookingLink == "" {
		s.logger.Warn("ListUpcoming: empty booking link")
		return nil, fmt.Errorf("%w: booking link is required", ErrInvalidInput)
	}

	// Проверяем существование ссылки
	if _, err := s.userRepo.GetByBookingLink(ctx, bookingLink); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ListUpcoming: link=%s not found", bookingLink)
			return nil, ErrLinkNotFound
		}
		s.logger.Error("ListUpcoming: failed to resolve link=%s: %v", bookingLink, err)
		return nil, fmt.Errorf("%w: ListUpcoming - failed to resolve link: %v", ErrInternal, err)
	}

	asOfDate := truncateToDate(s.timeProvider.Now())

	slots, err := s.slotRepo.GetUpcoming(ctx, bookingLink, asOfDate)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for link=%s: %v", bookingLink, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: found %d slots for link=%s", len(slots), bookingLink)
	return models.FromDomainSlots(bookingLink, slots), nil
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
