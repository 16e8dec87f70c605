package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	email        Email
	username     Username
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName string, email Email, username Username, passwordHash string) (*User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	return &User{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(id uuid.UUID, firstName, lastName string, email Email, username Username, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
