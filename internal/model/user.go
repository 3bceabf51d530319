package model

import "time"

// User roles. Penyuluh is an extension officer, peternak a farmer.
const (
	RoleAdmin    = "admin"
	RolePenyuluh = "penyuluh"
	RolePeternak = "peternak"
)

// User is an application account.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	GroupID      string    `json:"groupId,omitempty" bson:"groupId,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
