package models

// Client is the database row for an entry in the workspace client book.
type Client struct {
	ClientID    string  `json:"clientID"`
	WorkspaceID string  `json:"workspaceID"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	Notes       *string `json:"notes"`
	AuditFields
}
