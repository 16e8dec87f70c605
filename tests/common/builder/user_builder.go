//go:build unit || e2e

package builder

import (
	"stayspots/internal/domain/user"
	reqdto "stayspots/internal/handler/dto/request"
	"stayspots/internal/usecase/queries"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Username     string
	Password     string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		FirstName:    "Avery",
		LastName:     "Lane",
		Email:        "avery@example.com",
		Username:     "averylane",
		Password:     "password123",
		PasswordHash: "hashed_password",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.FirstName, u.LastName, email, username, u.PasswordHash)
}

func (u *UserBuilder) BuildSignUpRequestDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Credential: u.Email,
		Password:   u.Password,
	}
}

func (u *UserBuilder) BuildCredentials() *shared.UserCredentials {
	return &shared.UserCredentials{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}
