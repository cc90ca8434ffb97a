package get_available_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableTimes "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_times"
)

const (
	msgLinkNotFound = "ссылка бронирования недействительна или истекла"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate  = "требуется параметр date"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/links/{link}/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingLink := vars["link"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /links/{link}/available-times - Missing date param: link=%s", bookingLink)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /links/{link}/available-times - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		BookingLink: bookingLink,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrLinkNotFound):
			h.logger.Warn("GET /links/{link}/available-times - Link not found: link=%s", bookingLink)
			handlers.RespondNotFound(w, msgLinkNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /links/{link}/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /links/{link}/available-times - Failed to get times: link=%s, date=%s, error=%v",
				bookingLink, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /links/{link}/available-times - Returned %d ranges: link=%s, date=%s",
		len(result.Times), bookingLink, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
