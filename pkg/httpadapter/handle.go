package httpadapter

import (
	"encoding/json"
	"net/http"
)

type HttpHandle struct {
	Path    string
	Handler func(w http.ResponseWriter, r *http.Request)
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

type ErrorBody struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}
