package register_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	registerUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/register_user"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUsernameTaken      = "имя пользователя уже занято"
	msgInvalidInput       = "некорректные имя пользователя или пароль"
)

type Handler struct {
	useCase RegisterUserUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerUser.ErrUsernameTaken):
			h.logger.Warn("POST /users/register - Username taken: username=%s", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, registerUser.ErrInvalidInput):
			h.logger.Warn("POST /users/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users/register - Failed to register user: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/register - User registered: user_id=%d", result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
