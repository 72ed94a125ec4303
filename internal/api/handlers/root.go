package handlers

import "net/http"

// AliveMessage is returned by GET / so clients can tell the backend is up.
const AliveMessage = "Jarvis backend activo"

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Root handles GET /.
func Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Message: AliveMessage})
}

// Health handles GET /health for load balancers and probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
