package http

import (
	"net/http"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
	"github.com/MKhiriev/go-qes-vault/models"
)

func (h *Handler) encryptText(w http.ResponseWriter, r *http.Request) {
	var request models.EncryptionRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.encryptText", err)
		return
	}

	envelope, err := h.services.CipherService.EncryptText(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.encryptText", err)
		return
	}

	if _, err = utils.WriteJSON(w, envelope, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.encryptText").Msg("error writing response")
	}
}

func (h *Handler) decryptText(w http.ResponseWriter, r *http.Request) {
	var request models.DecryptionRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.decryptText", err)
		return
	}

	plaintext, err := h.services.CipherService.DecryptText(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.decryptText", err)
		return
	}

	if _, err = utils.WriteJSON(w, models.DecryptionResponse{Plaintext: plaintext}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decryptText").Msg("error writing response")
	}
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	var request models.CompareRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.compare", err)
		return
	}

	report, err := h.services.CipherService.Compare(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.compare", err)
		return
	}

	if _, err = utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.compare").Msg("error writing response")
	}
}
