package model

// Role is the authorisation level of a session.
type Role string

// Session roles. There are exactly two authorisation checks in the system:
// "is there a session" and "is the role admin".
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the single current authenticated identity. The role is a demo
// shortcut derived from the email string, not a verified credential.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
