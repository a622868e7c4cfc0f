// internal/gateway/validation_test.go
package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "resume-services/internal/common/errors"
)

func TestValidateApplyBody(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode apierrors.ErrorCode
	}{
		{
			name: "minimal valid body",
			body: `{"user_id":"u1","cv_json":{},"pd_text":"Job description","company_domain":"acme.com"}`,
		},
		{
			name: "full valid body",
			body: `{"user_id":"u1","cv_json":{"name":"Jane"},"pd_text":"JD","company_domain":"acme.com",
				"role_family":"Engineering","style":"concise","constraints":["one page"],"budget_gbp":0.5}`,
		},
		{
			name:         "missing company_domain",
			body:         `{"user_id":"u1","cv_json":{},"pd_text":"JD"}`,
			expectedCode: apierrors.ErrCodeValidationFailed,
		},
		{
			name:         "cv_json not an object",
			body:         `{"user_id":"u1","cv_json":"resume","pd_text":"JD","company_domain":"acme.com"}`,
			expectedCode: apierrors.ErrCodeValidationFailed,
		},
		{
			name:         "empty user_id",
			body:         `{"user_id":"","cv_json":{},"pd_text":"JD","company_domain":"acme.com"}`,
			expectedCode: apierrors.ErrCodeValidationFailed,
		},
		{
			name:         "unknown field rejected",
			body:         `{"user_id":"u1","cv_json":{},"pd_text":"JD","company_domain":"acme.com","surprise":1}`,
			expectedCode: apierrors.ErrCodeValidationFailed,
		},
		{
			name:         "negative budget",
			body:         `{"user_id":"u1","cv_json":{},"pd_text":"JD","company_domain":"acme.com","budget_gbp":-1}`,
			expectedCode: apierrors.ErrCodeValidationFailed,
		},
		{
			name:         "not json at all",
			body:         `{"user_id":`,
			expectedCode: apierrors.ErrCodeMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ValidateApplyBody([]byte(tt.body))

			if tt.expectedCode == "" {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}
