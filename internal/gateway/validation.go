// internal/gateway/validation.go
package gateway

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apierrors "resume-services/internal/common/errors"
)

// applyRequestSchema is the wire contract for POST /v1/apply.
const applyRequestSchema = `{
	"type": "object",
	"required": ["user_id", "cv_json", "pd_text", "company_domain"],
	"properties": {
		"user_id":        {"type": "string", "minLength": 1},
		"cv_json":        {"type": "object"},
		"pd_text":        {"type": "string", "minLength": 1},
		"company_domain": {"type": "string", "minLength": 1},
		"role_family":    {"type": "string"},
		"style":          {"type": "string"},
		"constraints":    {"type": "array", "items": {"type": "string"}},
		"budget_gbp":     {"type": "number", "minimum": 0}
	},
	"additionalProperties": false
}`

var applySchema = gojsonschema.NewStringLoader(applyRequestSchema)

// ValidateApplyBody checks a raw request body against the apply schema.
func ValidateApplyBody(body []byte) *apierrors.APIError {
	result, err := gojsonschema.Validate(applySchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apierrors.NewMalformedBodyError(err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resErr := range result.Errors() {
			details = append(details, resErr.String())
		}
		return apierrors.NewValidationError(strings.Join(details, "; "))
	}

	return nil
}
