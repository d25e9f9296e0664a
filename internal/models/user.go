package models

import "golang.org/x/crypto/bcrypt"

// User — table users. The phone number is the identity key used to
// resolve vendor ownership.
type User struct {
	Base
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	Name         string `json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// HashPassword turns a plain password into a safe hash
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword verifies a password against its hash
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
