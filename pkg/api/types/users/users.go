package users

import (
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/utils/rfctime"
)

type Role string

const (
	RoleCustomer        Role = "Customer"
	RoleRestaurantOwner Role = "RestaurantOwner"
	RoleAdmin           Role = "Admin"
)

type User struct {
	Id        ids.ID           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	LastLogin *rfctime.RFC3339 `json:"lastLogin,omitempty"`
}

func (u User) Equal(o User) bool {
	return u.Id == o.Id &&
		u.Username == o.Username &&
		u.Email == o.Email &&
		u.Role == o.Role &&
		rfctime.PEqual(u.LastLogin, o.LastLogin)
}

// Credentials is the request body of POST /auth/login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the request body of POST /auth/register
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginResponse is the response body of POST /auth/login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
