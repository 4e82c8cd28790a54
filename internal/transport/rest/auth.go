package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/domain"
	"github.com/heartmarshall/accountaudit/internal/origin"
	"github.com/heartmarshall/accountaudit/internal/service/auth"
	"github.com/heartmarshall/accountaudit/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*auth.SignupResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Logout(ctx context.Context, input auth.LogoutInput) error
	Activities(ctx context.Context, actorID uuid.UUID, action *domain.Action) ([]domain.Activity, error)
}

// AuthHandler serves account and activity REST endpoints.
type AuthHandler struct {
	svc    authService
	errors errorPresenter
}

// NewAuthHandler creates an AuthHandler. exposeDetails controls whether
// internal error details reach clients.
func NewAuthHandler(svc authService, logger *slog.Logger, exposeDetails bool) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		errors: errorPresenter{
			log:           logger.With("handler", "auth"),
			exposeDetails: exposeDetails,
		},
	}
}

type signupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type userResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type logoutRequest struct {
	Email string `json:"email"`
}

type logoutResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name := req.Name
	if name != nil && *name == "" {
		name = nil
	}

	result, err := h.svc.Signup(r.Context(), auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     name,
		Origin:   clientOrigin(r),
	})
	if err != nil {
		h.errors.present(w, r, err, "Internal server error during signup")
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		Message: "User created successfully",
		UserID:  result.AccountID.String(),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Origin:   clientOrigin(r),
	})
	if err != nil {
		h.errors.present(w, r, err, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User: userResponse{
			ID:    result.Account.ID.String(),
			Email: result.Account.Email,
			Name:  result.Account.Name,
		},
	})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.Logout(r.Context(), auth.LogoutInput{
		Email:  req.Email,
		Origin: clientOrigin(r),
	})
	if err != nil {
		h.errors.present(w, r, err, "Internal server error during logout")
		return
	}

	writeJSON(w, http.StatusOK, logoutResponse{
		Message: "User logged out successfully",
		Email:   req.Email,
	})
}

// Activities handles GET /activities. The actor is placed in the context by
// middleware.RequireActor.
func (h *AuthHandler) Activities(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization header is required")
		return
	}

	var filter *domain.Action
	if raw := r.URL.Query().Get("action"); raw != "" {
		action, err := domain.ParseAction(raw)
		if err != nil {
			h.errors.present(w, r, err, "")
			return
		}
		filter = &action
	}

	records, err := h.svc.Activities(r.Context(), actorID, filter)
	if err != nil {
		h.errors.present(w, r, err, "Failed to fetch activities")
		return
	}

	resp := make([]activityResponse, 0, len(records))
	for _, a := range records {
		resp = append(resp, activityResponse{
			ID:        a.ID.String(),
			UserID:    a.AccountID.String(),
			Email:     a.Email,
			Action:    a.Action.String(),
			IPAddress: a.Origin,
			CreatedAt: a.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// clientOrigin prefers the origin resolved by middleware.ClientOrigin.
func clientOrigin(r *http.Request) string {
	if o := ctxutil.OriginFromCtx(r.Context()); o != "" {
		return o
	}
	return origin.FromRequest(r)
}
