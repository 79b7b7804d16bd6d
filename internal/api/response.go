package api

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope every API endpoint returns.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func respondOK(w http.ResponseWriter, message string, data interface{}) {
	respond(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, code int, message string) {
	respond(w, code, Response{Status: false, Message: message})
}
