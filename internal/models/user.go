package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           string `json:"id" gorm:"column:id;primaryKey"`
	Name         string `json:"name" gorm:"column:name;not null"`
	LastName     string `json:"last_name" gorm:"column:last_name"`
	Bio          string `json:"bio" gorm:"column:bio"`
	Password     string `json:"password,omitempty" gorm:"-"` // Write-only input field, never persisted as-is
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	EmailAddress string `json:"email_address" gorm:"column:email_address;index"`
	Municipality string `json:"municipality" gorm:"column:municipality"`
	ZipCode      string `json:"zip_code" gorm:"column:zip_code"`
	AvatarURL    string `json:"avatar_url,omitempty" gorm:"column:avatar_url"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	u.Password = ""
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
