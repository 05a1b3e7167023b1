package apiserver

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-client/internal/app"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidDataProvided: http.StatusBadRequest,
	ErrWrongCredentials:    http.StatusUnauthorized,
	ErrSessionNotFound:     http.StatusUnauthorized,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrLoginAlreadyExists:  http.StatusConflict,
}

var errorMessageMap = map[error]string{
	ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	ErrWrongCredentials:    app.MsgInvalidLoginPassword,
	ErrSessionNotFound:     app.MsgUnauthorized,
	ErrRecordNotFound:      app.MsgPasswordNotFound,
	ErrLoginAlreadyExists:  app.MsgUsernameTaken,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError writes the {error} body for err. A zero status is derived from
// err.
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status == 0 {
		status = statusFromError(err)
	}
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}
	if _, werr := utils.WriteError(w, messageFromError(err), status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("write error response")
	}
}
