package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the success body for signup and removal operations.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the error body for all client errors. The shape is part
// of the public surface and is kept compatible with the original front-end.
// swagger:model DetailResponse
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body as-is.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a 200 response with a MessageResponse body.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteDetailError writes an error response with a DetailResponse body.
func WriteDetailError(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, DetailResponse{Detail: detail})
}
