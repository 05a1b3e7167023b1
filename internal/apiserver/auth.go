package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/MKhiriev/go-pass-client/models"
)

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	resp := models.AuthStatusResponse{}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if user, err := h.service.SessionUser(cookie.Value); err == nil {
			resp.Authenticated = true
			resp.User = &user
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidDataProvided, 0)
		return
	}

	user, err := h.service.Register(r.Context(), creds)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("registration rejected")
		writeError(w, r, err, 0)
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, struct{}{}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidDataProvided, 0)
		return
	}

	user, token, err := h.service.Login(r.Context(), creds)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("login rejected")
		writeError(w, r, err, 0)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Str("username", user.Username).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{User: user}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		h.service.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
