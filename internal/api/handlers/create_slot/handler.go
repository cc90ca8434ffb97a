package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	createSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "требуется аутентификация"
	msgOwnerNotFound      = "владелец не найден"
	msgInvalidDate        = "дата слота не может быть в прошлом"
	msgInvalidTimeRange   = "время конца должно быть строго позже времени начала"
	msgDuplicateSlot      = "слот с таким началом уже существует на эту дату"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /slots - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSlot.ErrOwnerNotFound):
			h.logger.Warn("POST /slots - Owner not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, createSlot.ErrDuplicateSlot):
			h.logger.Warn("POST /slots - Duplicate slot: owner_id=%d, date=%s, start=%s", ownerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgDuplicateSlot)

		case errors.Is(err, createSlot.ErrInvalidDate):
			h.logger.Warn("POST /slots - Invalid date: owner_id=%d, date=%s", ownerID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createSlot.ErrInvalidTimeRange):
			h.logger.Warn("POST /slots - Invalid time range: owner_id=%d, start=%s, end=%s", ownerID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to create slot: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d, owner_id=%d", result.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
