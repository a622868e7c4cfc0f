// internal/render/models.go
package render

import "encoding/json"

// RenderRequest carries an opaque resume document. The payload is never
// inspected by the stub pipeline.
type RenderRequest struct {
	CVJSON json.RawMessage `json:"cv_json"`
}

type RenderResponse struct {
	PDFURL string `json:"pdf_url"`
}

// Document is the renderer output: a storage locator for the produced file.
type Document struct {
	PDFURL string
}
