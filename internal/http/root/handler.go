// Package root serves the API entry point at "/".
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/image-analyzer-backend/internal/platform/logging"
)

// Register wires the root route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "read-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Description: "Returns a static greeting identifying the service.",
		Tags:        []string{"Root"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "root get", zap.String("path", "/"))
	out := welcome
	return &out, nil
}
