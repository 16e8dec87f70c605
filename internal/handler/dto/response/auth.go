package response

import (
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		User: UserResponse{
			ID:        r.UserID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Username:  r.Username,
		},
		Token: r.Token,
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Username:  v.Username,
	}
}
