package model

// User is a registered account. Accounts exist purely as storage — there are
// no user routes and no authentication flow — but a creative profile may point
// back at one through its userId.
//
// Password holds the bcrypt hash, never the plaintext; UserService hashes the
// insert payload before it reaches the store.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser is the client-supplied portion of a user account.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NewUser builds a full user record from an insert payload. The payload's
// Password is expected to already be hashed by the caller.
func NewUser(in InsertUser, id int) User {
	return User{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
	}
}
