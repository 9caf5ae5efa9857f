package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serialises data and writes it with statusCode.
//
// If marshaling fails it responds with 500 and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_, err = w.Write(jsonData)
	return err
}
