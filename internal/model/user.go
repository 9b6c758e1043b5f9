package model

import "fmt"

// Role is a closed set: exactly two actor kinds exist in the product.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole rejects anything outside the two known roles so that a
// third value can never leak into role-gated code paths.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is the authenticated identity issued by the backend on login.
// It is replaced wholesale on re-login, never mutated in place.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate is used when rehydrating a persisted identity: a partially
// filled or role-less record must be discarded, not trusted.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is empty")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is empty")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}
