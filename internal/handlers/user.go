package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/middleware"
	"Catalog/internal/model"
	"Catalog/internal/service"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UserHandler регистрация и выдача access-токена.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// Register POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	user, err := h.UserService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.Logger, "Register", err)
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// Login POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, "Login", err)
		return
	}
	token, err := middleware.BuildToken(user.ID, h.Config.AuthSecret, h.tokenTTL())
	if err != nil {
		h.Logger.Errorw("Login: sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, model.LoginResponse{AccessToken: token})
}

// Profile GET /api/auth/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]int64{"id": userID})
}

func (h *UserHandler) tokenTTL() time.Duration {
	if h.Config.TokenTTL <= 0 {
		return config.DefaultTokenTTL
	}
	return h.Config.TokenTTL
}
