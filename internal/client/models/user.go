// Package models defines the client-side data model: the authenticated user
// profile, transient input forms, the current notification, and local upload
// history records.
package models

// User is the profile the backend returns on login, registration, and the
// profile check. Only Email is guaranteed to be present; the Expensify
// partner fields are echoed back when the backend knows them.
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	PartnerUserID string `json:"partner_user_id,omitempty"`
	PolicyID      string `json:"policy_id,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}
