// internal/intel/models.go
package intel

// DefaultRoleFamily is applied when the caller supplies no role family.
const DefaultRoleFamily = "General"

type LookupRequest struct {
	Domain     string `json:"domain"`
	RoleFamily string `json:"role_family,omitempty"`
}

type Person struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	LinkedIn string `json:"linkedin"`
}

// CompanyIntel is the lookup response: the request echo plus the four
// intelligence collections.
type CompanyIntel struct {
	Domain     string   `json:"domain"`
	RoleFamily string   `json:"role_family"`
	Products   []string `json:"products"`
	People     []Person `json:"people"`
	Signals    []string `json:"signals"`
	Sources    []string `json:"sources"`
}
