package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgUnexpected         = "unexpected error"
	msgUserNotFound       = "user not found"
	msgInvalidCredentials = "invalid login or password"
)

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type handlers struct {
	users       UserService
	logger      logging.Logger
	tokenDomain string
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Message: msg})
}

// decodeCredentials reads and validates a {login, password} body. It writes
// the 400 response itself and returns false on failure.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return req, false
	}
	if err := common.ValidateCredentials(req.Login, req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func (h *handlers) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    value,
		Domain:   h.tokenDomain,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		MaxAge:   maxAge,
	}
}

func (h *handlers) getUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	writeJSON(w, http.StatusOK, models.Profiles(list))
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetOneByLogin(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	writeJSON(w, http.StatusOK, u.Profile())
}

func (h *handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, u.Profile())
}

func (h *handlers) registerUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	u, err := h.users.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyUsed) {
			writeError(w, http.StatusBadRequest, "login already used")
			return
		}
		writeError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	writeJSON(w, http.StatusOK, u.Profile())
}

func (h *handlers) loginUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.users.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorWrongPassword) {
			writeError(w, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		writeError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, 0))
	writeJSON(w, http.StatusOK, struct{}{})
}

// logoutUser expires the cookie. Tokens are stateless, so nothing is
// invalidated server-side.
func (h *handlers) logoutUser(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, struct{}{})
}
