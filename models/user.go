package models

import "time"

// Roles a user can hold. Role is a single string on the user document and
// inside the JWT claims.
const (
	RoleCitizen = "citizen"
	RoleDealer  = "dealer"
	RoleAdmin   = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleCitizen, RoleDealer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	UserID    string     `json:"userid" bson:"userid"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Password  string     `json:"-" bson:"password"`
	Role      string     `json:"role" bson:"role"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Cart      []CartItem `json:"cart" bson:"cart"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	LastLogin time.Time  `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// UserSummary is what login/register return alongside the token.
type UserSummary struct {
	UserID string `json:"userid" bson:"userid"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Role   string `json:"role" bson:"role"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Phone:  u.Phone,
	}
}
