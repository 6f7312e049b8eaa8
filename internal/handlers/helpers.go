package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Headers are already sent at this point, so an encode failure
	// can't be reported to the client
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response as {"error": message}
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
