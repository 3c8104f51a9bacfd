package models

import "github.com/XenomaCode/MVP-CATERING/pkg/roles"

type User struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Fullname     string     `db:"fullname" json:"fullname"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         roles.Role `db:"role" json:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Fullname *string `json:"fullname"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
