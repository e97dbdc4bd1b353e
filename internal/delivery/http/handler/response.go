package handler

import (
	"encoding/json"
	"net/http"
)

// SendJSON sends a JSON response
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// SendError sends an error response of the form {"message": ...}
func SendError(w http.ResponseWriter, message string, statusCode int) {
	SendJSON(w, statusCode, map[string]string{"message": message})
}
