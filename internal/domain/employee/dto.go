package employee

type FieldOfficerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}
