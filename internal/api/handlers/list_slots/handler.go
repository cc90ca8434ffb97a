package list_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/SMC-ScheduleService/internal/service/slots"
)

const (
	msgLinkNotFound = "ссылка бронирования недействительна или истекла"
	msgInvalidLink  = "некорректная ссылка бронирования"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/links/{link}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingLink := vars["link"]

	result, err := h.service.ListUpcoming(r.Context(), bookingLink)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrLinkNotFound):
			h.logger.Warn("GET /links/{link}/slots - Link not found: link=%s", bookingLink)
			handlers.RespondNotFound(w, msgLinkNotFound)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /links/{link}/slots - Invalid link: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLink)

		default:
			h.logger.Error("GET /links/{link}/slots - Failed to list slots: link=%s, error=%v", bookingLink, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /links/{link}/slots - Returned %d slots: link=%s", result.Total, bookingLink)
	handlers.RespondJSON(w, http.StatusOK, result)
}
