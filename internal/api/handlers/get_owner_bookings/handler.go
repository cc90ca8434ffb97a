package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgOwnerNotFound = "владелец не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListForOwner(r.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrOwnerNotFound):
			h.logger.Warn("GET /bookings - Owner not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings: owner_id=%d", result.Total, ownerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
