package apiserver

import (
	"net/http"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/utils"
)

// auth rejects requests without a live session cookie with 401. On success
// the session token and its user are stored in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Msg("request without session cookie")
			writeError(w, r, ErrSessionNotFound, http.StatusUnauthorized)
			return
		}

		user, err := h.service.SessionUser(cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("unknown session")
			writeError(w, r, err, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithSession(r.Context(), cookie.Value)
		ctx = utils.WithUser(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
