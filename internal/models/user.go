package models

import "time"

const (
	DefaultCountry       = "USA"
	DefaultIncomeBracket = "Middle"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Country       string    `json:"country"`
	IncomeBracket string    `json:"income_bracket"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	IncomeBracket string `json:"income_bracket"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the subset returned alongside a fresh login token.
type PublicUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	IncomeBracket string `json:"income_bracket"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Name:          u.Name,
		Email:         u.Email,
		Country:       u.Country,
		IncomeBracket: u.IncomeBracket,
	}
}
