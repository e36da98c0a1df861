package models

import (
	"fmt"
	"strings"
	"time"
)

// Role distinguishes the two account kinds. The raw role string from a
// request is parsed exactly once at the boundary; everything past the
// handler works with the typed value.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleBusiness Role = "business"
)

// ParseRole accepts the client-facing spellings ("Worker", "Business") in
// any casing.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "worker":
		return RoleWorker, nil
	case "business":
		return RoleBusiness, nil
	}
	return "", fmt.Errorf("unknown account role %q", s)
}

// Account is the identity record for both workers and businesses. The same
// email may exist once per role.
type Account struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	Contact    string    `gorm:"type:varchar(50)" json:"contact"`
	Location   string    `gorm:"type:varchar(255)" json:"location"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email_role" json:"email"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"`
	Role       Role      `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_email_role" json:"role"`
	ProfilePic string    `gorm:"type:text" json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
