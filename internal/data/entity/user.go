package entity

import (
	"time"
)

// User holds the stored account record. PasswordHash is the bcrypt
// derivation of the registration password; the plaintext is never stored.
type User struct {
	Base
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Birthday     *time.Time `db:"birthday"`
}
