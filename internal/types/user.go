package types

// User identifies an employee or manager. Login is handled elsewhere; the
// backend only needs identity and department for per-user stores and
// recommendation bucketing.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	Avatar         string `json:"avatar,omitempty"`
	YearsAtCompany int    `json:"yearsAtCompany,omitempty"`
}
