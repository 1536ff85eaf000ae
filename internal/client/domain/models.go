// Package domain contains the client-list models.
package domain

// Client is one entry in the client list. ID is assigned at creation and
// immutable afterwards.
type Client struct {
	ID      string `json:"id"`
	Logo    string `json:"logo"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
}
