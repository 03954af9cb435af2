package utils

import (
	"encoding/json"
	"net/http"
)

// Message is the body shape shared by every non-collection response.
type Message struct {
	Message string `json:"message"`
}

// ResponseJSON writes payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with {"message": ...}
func ResponseSuccess(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, Message{Message: message})
}

// ------------- Error responses -------------

// ResponseError writes {"message": message} with the given status code.
func ResponseError(w http.ResponseWriter, message string, code int) {
	ResponseJSON(w, code, Message{Message: message})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, message, http.StatusBadRequest)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, message, http.StatusNotFound)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, message, http.StatusInternalServerError)
}
