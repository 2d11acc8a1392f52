package models

import "time"

// RoleAdmin is the only elevated role the portal knows about.
const RoleAdmin = "admin"

// User represents a portal account, upserted on every login.
type User struct {
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"` // "" or "admin"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
