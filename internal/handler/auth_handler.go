package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rtaweb/backend/internal/service"
	"github.com/rtaweb/backend/pkg/auth"
)

// AuthHandler handles admin login/logout and session inspection.
type AuthHandler struct {
	authService  service.AuthService
	secret       []byte
	ttl          time.Duration
	secureCookie bool
	now          func() time.Time
}

// NewAuthHandler creates an AuthHandler. secret signs session tokens.
func NewAuthHandler(authService service.AuthService, secret []byte, ttl time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secret:       secret,
		ttl:          ttl,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	UserID        int64     `json:"user_id"`
	Username      string    `json:"username"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	case err != nil:
		writeServiceError(w, r, "Failed to log in", err)
		return
	}

	sess := auth.Session{UserID: user.ID, Username: user.Username, ExpiresAt: h.now().Add(h.ttl).UTC()}
	token, err := auth.CreateSessionToken(sess, h.secret)
	if err != nil {
		serverError(w, r, "Failed to create session", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		UserID:        sess.UserID,
		Username:      sess.Username,
		ExpiresAt:     sess.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout by expiring the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session (behind auth.RequireAuth).
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		UserID:        sess.UserID,
		Username:      sess.Username,
		ExpiresAt:     sess.ExpiresAt,
	})
}
