package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrRange = "некорректный формат даты или диапазона, ожидается YYYY-MM-DD и HH:MM-HH:MM"
	msgLinkNotFound       = "ссылка бронирования недействительна или истекла"
	msgSlotNotAvailable   = "выбранный временной диапазон недоступен"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/links/{link}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingLink := vars["link"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /links/{link}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и диапазона)
	useCaseReq, err := req.ToUseCaseRequest(bookingLink)
	if err != nil {
		h.logger.Warn("POST /links/{link}/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrRange)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrLinkNotFound):
			h.logger.Warn("POST /links/{link}/bookings - Link not found: link=%s", bookingLink)
			handlers.RespondNotFound(w, msgLinkNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /links/{link}/bookings - Range not available: link=%s, date=%s, range=%s",
				bookingLink, req.Date, req.TimeRange)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /links/{link}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /links/{link}/bookings - Failed to create booking: link=%s, error=%v", bookingLink, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /links/{link}/bookings - Booking created: booking_id=%d, link=%s, date=%s, range=%s",
		result.ID, bookingLink, req.Date, req.TimeRange)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
