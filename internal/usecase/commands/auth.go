package commands

import (
	"context"

	domuser "stayspots/internal/domain/user"
	"stayspots/internal/infra"
	"stayspots/internal/pkg/errs"
	"stayspots/internal/pkg/jwt"
	"stayspots/internal/pkg/password"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("a user with that email already exists")
	ErrUsernameTaken      = errs.New("a user with that username already exists")
	ErrInvalidCredentials = errs.New("invalid credentials")
)

type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

type LoginParams struct {
	// Credential matches either email or username.
	Credential string
	Password   string
}

type AuthResult struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Username  string
	Token     string
}

type AuthCommands interface {
	SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
}

type authUseCaseImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwt: jwtSvc}
}

func (uc *authUseCaseImpl) SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error) {
	email, err := domuser.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	username, err := domuser.NewUsername(params.Username)
	if err != nil {
		return nil, err
	}
	if _, err = domuser.NewPassword(params.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := domuser.NewUser(params.FirstName, params.LastName, email, username, hash)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Distinguish which uniqueness failed so the caller gets a
		// field-level message; the unique indexes backstop races.
		if existing, derr := tx.Reads().UserByEmail(ctx, email.Value()); derr != nil {
			if !infra.IsKind(derr, infra.KindNotFound) {
				return derr
			}
		} else if existing != nil {
			return ErrEmailTaken
		}
		if existing, derr := tx.Reads().UserByUsername(ctx, username.Value()); derr != nil {
			if !infra.IsKind(derr, infra.KindNotFound) {
				return derr
			}
		} else if existing != nil {
			return ErrUsernameTaken
		}

		id, derr := tx.Users().Create(ctx, tx.DB(), shared.CreateUserParams{
			FirstName:    u.FirstName(),
			LastName:     u.LastName(),
			Email:        u.Email().Value(),
			Username:     u.Username().Value(),
			PasswordHash: u.PasswordHash(),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrEmailTaken
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.jwt.GenerateToken(createdID, u.Username().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		UserID:    createdID,
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email().Value(),
		Username:  u.Username().Value(),
		Token:     token,
	}, nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	creds, err := uc.uow.CommandReads().UserByCredential(ctx, params.Credential)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(creds.PasswordHash, params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwt.GenerateToken(creds.ID, creds.Username)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		UserID:    creds.ID,
		FirstName: creds.FirstName,
		LastName:  creds.LastName,
		Email:     creds.Email,
		Username:  creds.Username,
		Token:     token,
	}, nil
}
