package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(u *User) error
	GetUserByID(id uint) (*User, error)
	GetUserRoles(userID uint) ([]string, error)
	AssignRole(userID uint, roleName string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	if err := r.db.Preload("Roles").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetUserRoles returns role names; gorm.ErrRecordNotFound when the user does not exist.
func (r *userRepository) GetUserRoles(userID uint) ([]string, error) {
	u, err := r.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, gorm.ErrRecordNotFound
	}
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names, nil
}

// AssignRole attaches the named role, creating it on first use.
func (r *userRepository) AssignRole(userID uint, roleName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var role Role
		if err := tx.Where(Role{Name: roleName}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
		return tx.Model(&User{Model: gorm.Model{ID: userID}}).Association("Roles").Append(&role)
	})
}
