package model

import "strings"

// MockPassword is shared by every demo account
const MockPassword = "chapa123"

// User is a demo account. Passwords are not part of the model.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

var mockUsers = []User{
	{ID: "1", Email: "user@chapa.co", Name: "John Doe", Role: RoleUser},
	{ID: "2", Email: "admin@chapa.co", Name: "Jane Smith", Role: RoleAdmin},
	{ID: "3", Email: "superadmin@chapa.co", Name: "Mike Johnson", Role: RoleSuperAdmin},
}

// FindUserByEmail looks up a demo account, ignoring case
func FindUserByEmail(email string) (User, bool) {
	for _, u := range mockUsers {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, true
		}
	}
	return User{}, false
}

// FindUserByID looks up a demo account by id
func FindUserByID(id string) (User, bool) {
	for _, u := range mockUsers {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
