// Package openapi builds the huma configuration shared by the server and tests.
package openapi

import (
	"github.com/danielgtaylor/huma/v2"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // registers application/cbor
)

const (
	// Title is the API name shown in the OpenAPI document and docs UI.
	Title = "AI Image Analyzer Backend"
	// DocsPath serves the interactive API reference.
	DocsPath = "/docs"
	// SpecPath serves the OpenAPI document as SpecPath+".json" and SpecPath+".yaml".
	SpecPath = "/openapi"
)

// Config returns the huma configuration for the API.
//
// The default schema-link transformer is removed so response bodies carry no
// "$schema" member and no Link header. Every JSON request and response body
// is also advertised as application/cbor.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = DocsPath
	cfg.OpenAPIPath = SpecPath
	cfg.CreateHooks = nil
	cfg.OpenAPI.OnAddOperation = append(cfg.OpenAPI.OnAddOperation, addCBORContent)
	return cfg
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
