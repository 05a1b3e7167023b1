package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPasswords(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	records, err := h.service.List(r.Context(), user)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}
	if records == nil {
		records = []models.CredentialRecord{}
	}
	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())

	var payload models.RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidDataProvided, 0)
		return
	}

	record, err := h.service.Create(r.Context(), user, payload)
	if err != nil {
		log.Debug().Err(err).Msg("record rejected")
		writeError(w, r, err, 0)
		return
	}

	log.Debug().Str("id", record.ID.String()).Msg("record created")
	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())
	id := models.ID(chi.URLParam(r, "id"))

	var payload models.RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidDataProvided, 0)
		return
	}

	record, err := h.service.Update(r.Context(), user, id, payload)
	if err != nil {
		log.Debug().Err(err).Str("id", id.String()).Msg("update rejected")
		writeError(w, r, err, 0)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deletePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	id := models.ID(chi.URLParam(r, "id"))

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("id", id.String()).Msg("delete rejected")
		writeError(w, r, err, 0)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
