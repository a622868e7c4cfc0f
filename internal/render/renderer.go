// internal/render/renderer.go
package render

import (
	"context"
	"encoding/json"
)

// PlaceholderPDFURL stands in for the locator a real rendering pipeline
// would produce.
const PlaceholderPDFURL = "s3://bucket/fake.pdf"

// Renderer turns a resume document into a stored PDF. The HTTP layer only
// depends on this interface so the stub can later be replaced by a real
// rendering pipeline without touching handlers.
type Renderer interface {
	Render(ctx context.Context, cv json.RawMessage) (*Document, error)
}

// StubRenderer ignores its input and returns the placeholder locator.
type StubRenderer struct{}

func NewStubRenderer() *StubRenderer {
	return &StubRenderer{}
}

func (r *StubRenderer) Render(_ context.Context, _ json.RawMessage) (*Document, error) {
	return &Document{PDFURL: PlaceholderPDFURL}, nil
}
