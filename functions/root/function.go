// Package root exposes the welcome endpoint as an HTTP Cloud Function.
package root

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// WelcomeMessage matches the message served by the main API.
const WelcomeMessage = "Welcome to the AI Image Analyzer Backend API!"

// Response is the function payload.
type Response struct {
	Message string `json:"message"`
}

func init() {
	functions.HTTP("Root", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Message: WelcomeMessage})
}
