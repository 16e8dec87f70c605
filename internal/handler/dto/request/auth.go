package request

import (
	"stayspots/internal/usecase/commands"
)

type SignUpRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=4"`
	Password  string `json:"password" binding:"required,min=6"`
}

func (r SignUpRequest) ToParams() commands.SignUpParams {
	return commands.SignUpParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
	}
}

type LoginRequest struct {
	// Credential matches either email or username.
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (r LoginRequest) ToParams() commands.LoginParams {
	return commands.LoginParams{
		Credential: r.Credential,
		Password:   r.Password,
	}
}
