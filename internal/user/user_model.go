package user

import "gorm.io/gorm"

// User owns teams and carries the rating profile.
type User struct {
	gorm.Model
	Username string `gorm:"unique" json:"username"`
	Email    string `gorm:"unique" json:"email"`
	Roles    []Role `gorm:"many2many:user_roles" json:"roles"`
}

type Role struct {
	gorm.Model
	Name string `gorm:"unique;not null"`
}

const RoleAdmin = "admin"
