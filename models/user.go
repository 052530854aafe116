package models

// User represents an account allowed to manage blog posts.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// UserName is the unique login name used during authentication.
	UserName string `json:"userName"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LoginDTO is the request payload of POST /authenticate/login.
type LoginDTO struct {
	UserName     string `json:"userName" validate:"required,max=64"`
	UserPassword string `json:"userPassword" validate:"required,max=72"`
}

// LoginVO is returned on a successful login.
type LoginVO struct {
	// Token is the signed JWT to be sent as "Authorization: Bearer <token>".
	Token string `json:"token"`

	// UserName echoes the authenticated user name.
	UserName string `json:"username"`
}
