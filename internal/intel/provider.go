// internal/intel/provider.go
package intel

import "context"

// Provider resolves company intelligence for a domain. The HTTP layer only
// depends on this interface so the static stub can later be replaced by a
// live lookup without touching handlers.
type Provider interface {
	Lookup(ctx context.Context, domain, roleFamily string) (*CompanyIntel, error)
}

// StaticProvider returns a fixed intelligence record for every domain.
// It stands in for a real lookup pipeline.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Lookup(_ context.Context, domain, roleFamily string) (*CompanyIntel, error) {
	return &CompanyIntel{
		Domain:     domain,
		RoleFamily: roleFamily,
		Products:   []string{"ExampleProduct"},
		People: []Person{
			{Name: "Jane Doe", Title: "Hiring Manager", LinkedIn: "https://linkedin.com/in/janedoe"},
		},
		Signals: []string{"Recent funding", "Hiring push"},
		Sources: []string{"https://example.com"},
	}, nil
}
