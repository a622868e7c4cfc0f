// internal/gateway/models.go
package gateway

import "encoding/json"

// ApplyRequest is the single entry point payload: everything needed to
// tailor one application to one company.
type ApplyRequest struct {
	UserID        string          `json:"user_id"`
	CVJSON        json.RawMessage `json:"cv_json"`
	PDText        string          `json:"pd_text"`
	CompanyDomain string          `json:"company_domain"`
	RoleFamily    string          `json:"role_family,omitempty"`
	Style         string          `json:"style,omitempty"`
	Constraints   []string        `json:"constraints,omitempty"`
	BudgetGBP     float64         `json:"budget_gbp,omitempty"`
}

type ApplyResponse struct {
	PDFURL      string  `json:"pdf_url"`
	CoverLetter string  `json:"cover_letter"`
	Brief       string  `json:"brief"`
	TokensIn    int     `json:"tokens_in"`
	TokensOut   int     `json:"tokens_out"`
	CostGBP     float64 `json:"cost_gbp"`
}

// intelRequest/intelResponse mirror the Lookup Service wire contract.
type intelRequest struct {
	Domain     string `json:"domain"`
	RoleFamily string `json:"role_family,omitempty"`
}

type intelResponse struct {
	Domain     string   `json:"domain"`
	RoleFamily string   `json:"role_family"`
	Products   []string `json:"products"`
	People     []struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		LinkedIn string `json:"linkedin"`
	} `json:"people"`
	Signals []string `json:"signals"`
	Sources []string `json:"sources"`
}

// renderRequest/renderResponse mirror the Render Service wire contract.
type renderRequest struct {
	CVJSON json.RawMessage `json:"cv_json"`
}

type renderResponse struct {
	PDFURL string `json:"pdf_url"`
}
