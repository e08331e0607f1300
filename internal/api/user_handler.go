package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventboard/eventboard-api/internal/api/shared"
	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/platform/logger"
	"github.com/eventboard/eventboard-api/internal/service/auth"
	"github.com/eventboard/eventboard-api/internal/store"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore      store.UserStore
	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordHasher auth.PasswordHasher,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore:      userStore,
		tokenService:   tokenService,
		passwordHasher: passwordHasher,
		logger:         log.With("component", "user_handler"),
	}
}

// List handles GET /users. Public.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	users, err := h.userStore.List(r.Context(), limit)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserListResponse{
		Count: len(users),
		Users: users,
		Limit: limit,
	})
}

// Me handles GET /users/me. Requires the authentication gate.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), identity.UID)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Register handles POST /users/register. Public.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Field-specific validation failures carry the field's message.
	if !domain.IsNonEmptyString(req.Name) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidName.Error())
		return
	}
	if !domain.IsValidEmail(req.Email) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidEmail.Error())
		return
	}
	if !domain.IsValidPassword(req.Password) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidPassword.Error())
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	user.HashedPassword = hashed

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if !store.IsDuplicateError(err) {
			log.Error("failed to create user", "error", err, "email", user.Email)
		}
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), auth.Identity{
		UID:   user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		OK:    true,
		UID:   user.ID,
		Token: token,
	})
}

// Login handles POST /users/login. Public.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		log.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.passwordHasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, ErrInvalidCredentials.Error())
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), auth.Identity{
		UID:   user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UID:   user.ID,
		Token: token,
	})
}

// UpdateMe handles PUT /users/me. Requires the authentication gate.
// The target row is always the caller's own profile.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !domain.IsNonEmptyString(req.Name) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidName.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	if err := h.userStore.UpdateName(r.Context(), identity.UID, name); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update profile", "error", err, "user_id", identity.UID)
		}
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		OK:  true,
		Msg: "profile updated",
	})
}
