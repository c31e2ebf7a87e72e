package domain

// Client is a salon customer that transactions may link to.
type Client struct {
	ClientID    string `json:"clientID"` // Primary Key (e.g., UUID)
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Notes       string `json:"notes,omitempty"`
	AuditFields
}
