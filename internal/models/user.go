// internal/models/user.go
package models

import (
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"`
	Roles        pq.StringArray `json:"roles" gorm:"type:text[];not null"`

	// Relationships
	CartItems []CartItem `json:"cart_items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// HasRole reports whether the user carries the given role. Every account
// implicitly holds RoleUser.
func (u *User) HasRole(role string) bool {
	if role == RoleUser {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
