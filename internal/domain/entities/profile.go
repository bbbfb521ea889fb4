package entities

import "time"

type ProfileRole string

const (
	ProfileRoleCustomer ProfileRole = "customer"
	ProfileRoleAdmin    ProfileRole = "admin"
)

// Profile links an authenticated identity to its role and saved address.
type Profile struct {
	ID        string      `json:"id"`
	Role      ProfileRole `json:"role"`
	Address   *Address    `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
