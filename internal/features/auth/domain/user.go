package domain

import (
	"loadharbour/internal/core/validate"
)

// Role controls what a signed-in user may do.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleDriver     Role = "driver"
	RoleReadOnly   Role = "read_only"
)

// User is an account that can sign in to the dashboard. PasswordSalt
// and PasswordHash never leave the process.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordSalt string `json:"-"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"createdAt"`
}

// Credentials is the register/login request body. Name and Role only
// apply on register.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Session is the login response: the user plus an opaque bearer token.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

var registerSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "email", Rules: []validate.Rule{
			validate.Required("Email is required"),
			validate.Email("Invalid email address"),
		}},
		{Name: "password", Rules: []validate.Rule{
			validate.Required("Password is required"),
			validate.MinLen(6, "Password must be at least 6 characters"),
		}},
		{Name: "name", Rules: []validate.Rule{
			validate.Required("Name is required"),
		}},
		{Name: "role", Rules: []validate.Rule{
			validate.OneOf("Invalid role",
				string(RoleAdmin),
				string(RoleDispatcher),
				string(RoleDriver),
				string(RoleReadOnly),
			),
		}},
	},
}

var loginSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "email", Rules: []validate.Rule{
			validate.Required("Email is required"),
		}},
		{Name: "password", Rules: []validate.Rule{
			validate.Required("Password is required"),
		}},
	},
}

// ValidateRegister checks the credentials as a registration request.
func (c Credentials) ValidateRegister() error {
	errs := registerSchema.Validate(map[string]string{
		"email":    c.Email,
		"password": c.Password,
		"name":     c.Name,
		"role":     string(c.Role),
	})
	if errs.Any() {
		return errs
	}
	return nil
}

// ValidateLogin checks the credentials as a login request.
func (c Credentials) ValidateLogin() error {
	errs := loginSchema.Validate(map[string]string{
		"email":    c.Email,
		"password": c.Password,
	})
	if errs.Any() {
		return errs
	}
	return nil
}
