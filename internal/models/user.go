package models

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Account is a directory entry. Seeded demo accounts have no PasswordHash and
// authenticate with the shared demo password.
type Account struct {
	User         User
	PasswordHash string
}
