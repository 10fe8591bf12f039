package auth_model

import (
	"time"
)

type User struct {
	ID        int       `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Owner is the projection of a user attached to resources on read paths.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
