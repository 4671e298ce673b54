package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
	"github.com/MKhiriev/go-qes-vault/models"
)

func (h *Handler) createPasswordEntry(w http.ResponseWriter, r *http.Request) {
	var newEntry models.NewPasswordEntry
	if err := decodeJSON(r, &newEntry); err != nil {
		writeError(w, r, "*Handler.createPasswordEntry", err)
		return
	}

	entry, err := h.services.VaultService.Create(r.Context(), newEntry)
	if err != nil {
		writeError(w, r, "*Handler.createPasswordEntry", err)
		return
	}

	if _, err = utils.WriteJSON(w, entry, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createPasswordEntry").Msg("error writing response")
	}
}

// listPasswordEntries accepts ?q= for a case-insensitive name search and
// ?limit= to cap the result.
func (h *Handler) listPasswordEntries(w http.ResponseWriter, r *http.Request) {
	filter := models.PasswordEntryFilter{NameContains: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, "*Handler.listPasswordEntries", ErrInvalidForm)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.services.VaultService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listPasswordEntries", err)
		return
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listPasswordEntries").Msg("error writing response")
	}
}

func (h *Handler) getPasswordEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.VaultService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getPasswordEntry", err)
		return
	}

	if _, err = utils.WriteJSON(w, entry, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPasswordEntry").Msg("error writing response")
	}
}

func (h *Handler) revealPasswordEntry(w http.ResponseWriter, r *http.Request) {
	var request models.RevealRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.revealPasswordEntry", err)
		return
	}

	password, err := h.services.VaultService.Reveal(r.Context(), chi.URLParam(r, "id"), request.MasterPassword)
	if err != nil {
		writeError(w, r, "*Handler.revealPasswordEntry", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, models.RevealResponse{Password: password}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.revealPasswordEntry").Msg("error writing response")
	}
}

func (h *Handler) deletePasswordEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deletePasswordEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
