package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an application/json response
// with the given status code.
//
// A marshal failure answers 500 and returns a wrapped error; the caller's
// status code is not written in that case. On success it returns the
// number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
