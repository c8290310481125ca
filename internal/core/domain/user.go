package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the authoritative identity record returned by the platform API.
// The session layer never derives any of these fields from the token payload;
// the server is the source of truth on every bootstrap and login.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Credits   int       `json:"credits"`
	AvatarURL string    `json:"profileImage,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate carries the fields a user may change on their own record.
// Zero-value fields are omitted from the request body; the server replies
// with the full updated record, which replaces the local identity wholesale.
type ProfileUpdate struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL string `json:"profileImage,omitempty" validate:"omitempty,url"`
}
