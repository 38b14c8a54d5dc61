package root

// WelcomeMessage is the fixed greeting returned by GET /.
const WelcomeMessage = "Welcome to the AI Image Analyzer Backend API!"

// Data models the response payload for the root endpoint.
type Data struct {
	Message string `json:"message" doc:"Welcome message" example:"Welcome to the AI Image Analyzer Backend API!"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Data
}

// welcome is shared by every request and never mutated.
var welcome = GetOutput{Body: Data{Message: WelcomeMessage}}
