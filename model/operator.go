package model

import "time"

// OperatorEntity represents the operator table entity
type OperatorEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	Role         string     `db:"role" json:"role"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type OperatorFilter struct {
	ID       uint64
	Username string
	Email    string
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// OperatorSession is the authenticated identity attached to a request.
// SessionID doubles as the lease owner.
type OperatorSession struct {
	OperatorID uint64
	Username   string
	Role       string
	SessionID  string
}
