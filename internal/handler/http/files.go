package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
	"github.com/MKhiriev/go-qes-vault/models"
)

const (
	contentTypeEnvelope = "application/json"
	contentTypeBinary   = "application/octet-stream"
)

// encryptFile takes multipart fields file, password, layers and store. The
// envelope is returned as a .encrypted download and, if store is true, also
// kept in the envelope storage.
func (h *Handler) encryptFile(w http.ResponseWriter, r *http.Request) {
	if err := h.parseUpload(w, r); err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}

	data, name, err := readFormFile(r)
	if err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}
	layers, err := formInt(r, "layers")
	if err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}
	store, err := formBool(r, "store")
	if err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}

	encrypted, err := h.services.CipherService.EncryptFile(r.Context(), models.FileEncryptionRequest{
		Name:     name,
		Data:     data,
		Password: r.FormValue("password"),
		Layers:   layers,
	})
	if err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}

	if store {
		if err = h.services.EnvelopeService.Store(r.Context(), encrypted); err != nil {
			writeError(w, r, "*Handler.encryptFile", err)
			return
		}
	}

	body, err := service.MarshalEnvelope(encrypted.Envelope)
	if err != nil {
		writeError(w, r, "*Handler.encryptFile", err)
		return
	}
	writeAttachment(w, encrypted.Name, contentTypeEnvelope, body)
}

// decryptFile takes multipart fields file (an envelope), password and
// assume_layers, and returns the original bytes as a download.
func (h *Handler) decryptFile(w http.ResponseWriter, r *http.Request) {
	if err := h.parseUpload(w, r); err != nil {
		writeError(w, r, "*Handler.decryptFile", err)
		return
	}

	data, name, err := readFormFile(r)
	if err != nil {
		writeError(w, r, "*Handler.decryptFile", err)
		return
	}
	assumeLayers, err := formInt(r, "assume_layers")
	if err != nil {
		writeError(w, r, "*Handler.decryptFile", err)
		return
	}

	decrypted, err := h.services.CipherService.DecryptFile(r.Context(), models.FileDecryptionRequest{
		Name:         name,
		Data:         data,
		Password:     r.FormValue("password"),
		AssumeLayers: assumeLayers,
	})
	if err != nil {
		writeError(w, r, "*Handler.decryptFile", err)
		return
	}

	writeAttachment(w, decrypted.Name, contentTypeBinary, decrypted.Data)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.EnvelopeService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listFiles", err)
		return
	}

	if _, err = utils.WriteJSON(w, models.StoredFiles{Files: names}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listFiles").Msg("error writing response")
	}
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	data, err := h.services.EnvelopeService.Fetch(r.Context(), name)
	if err != nil {
		writeError(w, r, "*Handler.downloadFile", err)
		return
	}

	writeAttachment(w, name, contentTypeEnvelope, data)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EnvelopeService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, "*Handler.deleteFile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
