package bookings

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований владельцем
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListForOwner возвращает все бронирования по ссылке владельца,
// отсортированные по дате и времени начала
func (s *Service) ListForOwner(ctx context.Context, ownerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListForOwner: fetching bookings for owner=%d", ownerID)

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ListForOwner: owner id=%d not found", ownerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("ListForOwner: failed to get owner id=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListForOwner - failed to get owner: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByLink(ctx, owner.BookingLink)
	if err != nil {
		s.logger.Error("ListForOwner: repository error for link=%s: %v", owner.BookingLink, err)
		return nil, fmt.Errorf("%w: ListForOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForOwner: found %d bookings for owner=%d", len(bookings), ownerID)
	return models.FromDomainBookings(owner.BookingLink, bookings), nil
}
