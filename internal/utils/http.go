package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

// WriteJSON marshals data and writes it as the response body with
// statusCode. Marshalling happens before any header goes out, so a value
// that cannot be encoded still produces a clean 500 instead of a half-written
// response. It returns the number of body bytes written.
//
//	utils.WriteJSON(w, envelope, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal response body: %w", err)
	}

	return writeBody(w, contentTypeJSON, body, statusCode)
}

// WriteText writes text as a plain-text response body with statusCode.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return writeBody(w, contentTypeText, []byte(text), statusCode)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
