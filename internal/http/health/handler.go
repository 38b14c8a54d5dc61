// Package health serves the liveness probe outside the OpenAPI surface.
package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler reports the service as healthy along with the running build version.
func Handler(version string) http.HandlerFunc {
	body, _ := json.Marshal(Response{Status: "healthy", Version: version})
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
