package domain

import (
	"fmt"
	"time"
)

type UserRole string

const (
	UserRoleUser    UserRole = "User"
	UserRoleManager UserRole = "Manager"
)

func ParseUserRole(value string) (UserRole, error) {
	switch role := UserRole(value); role {
	case UserRoleUser, UserRoleManager:
		return role, nil
	}
	return "", fmt.Errorf("unknown user role %q", value)
}

func (r UserRole) IsManager() bool {
	switch r {
	case UserRoleManager:
		return true
	case UserRoleUser:
		return false
	}
	return false
}

type User struct {
	ID        uint64
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}
