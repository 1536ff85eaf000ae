// Package domain contains the business-profile model.
package domain

// Company is the single business profile. There is no identity field;
// exactly one instance exists, created empty on first run.
type Company struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"` // data URI
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
