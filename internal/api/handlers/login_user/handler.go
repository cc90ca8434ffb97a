package login_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	loginUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/login_user"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
	msgInvalidInput       = "требуются имя пользователя и пароль"
)

type Handler struct {
	useCase LoginUserUseCase
	logger  Logger
}

func NewHandler(useCase LoginUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, loginUser.ErrInvalidCredentials):
			h.logger.Warn("POST /users/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, loginUser.ErrInvalidInput):
			h.logger.Warn("POST /users/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/login - User logged in: user_id=%d", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
