//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domuser "stayspots/internal/domain/user"
	"stayspots/internal/pkg/jwt"
	"stayspots/internal/pkg/password"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/shared"
	"stayspots/tests/common/builder"
	"stayspots/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands(uow *fake.UnitOfWork) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwt.NewService("test-secret-key", time.Hour))
}

func signUpParams() commands.SignUpParams {
	u := builder.NewUserBuilder()
	return commands.SignUpParams{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
	}
}

func TestAuthSignUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		userID := uuid.New()

		var created shared.CreateUserParams
		uow.Tx.UserRepo.CreateFn = func(_ context.Context, params shared.CreateUserParams) (uuid.UUID, error) {
			created = params
			return userID, nil
		}

		result, err := newAuthCommands(uow).SignUp(context.Background(), signUpParams())
		require.NoError(t, err)

		assert.Equal(t, userID, result.UserID)
		assert.Equal(t, "avery@example.com", result.Email)
		assert.NotEmpty(t, result.Token)

		assert.NotEqual(t, "password123", created.PasswordHash, "password must be stored hashed")
		require.NoError(t, password.ComparePassword(created.PasswordHash, "password123"))
	})

	t.Run("email already taken", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uow.Tx.CommandReads.UserByEmailFn = func(_ context.Context, _ string) (*shared.UserCredentials, error) {
			return builder.NewUserBuilder().BuildCredentials(), nil
		}

		_, err := newAuthCommands(uow).SignUp(context.Background(), signUpParams())
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("username already taken", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uow.Tx.CommandReads.UserByUsernameFn = func(_ context.Context, _ string) (*shared.UserCredentials, error) {
			return builder.NewUserBuilder().BuildCredentials(), nil
		}

		_, err := newAuthCommands(uow).SignUp(context.Background(), signUpParams())
		require.ErrorIs(t, err, commands.ErrUsernameTaken)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.SignUpParams)
			errIs  error
		}{
			{
				name:   "invalid email",
				mutate: func(p *commands.SignUpParams) { p.Email = "nope" },
				errIs:  domuser.ErrInvalidEmail,
			},
			{
				name:   "short username",
				mutate: func(p *commands.SignUpParams) { p.Username = "ab" },
				errIs:  domuser.ErrInvalidUsername,
			},
			{
				name:   "weak password",
				mutate: func(p *commands.SignUpParams) { p.Password = "12345" },
				errIs:  domuser.ErrPasswordTooWeak,
			},
			{
				name:   "missing first name",
				mutate: func(p *commands.SignUpParams) { p.FirstName = "" },
				errIs:  domuser.ErrMissingName,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				params := signUpParams()
				c.mutate(&params)

				_, err := newAuthCommands(fake.NewUnitOfWork()).SignUp(context.Background(), params)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestAuthLogin(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	stored := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
		u.PasswordHash = hash
	}).BuildCredentials()

	stubCredential := func(uow *fake.UnitOfWork) {
		uow.Tx.CommandReads.UserByCredentialFn = func(_ context.Context, credential string) (*shared.UserCredentials, error) {
			if credential != stored.Email && credential != stored.Username {
				return nil, fake.NotFoundErr()
			}
			return stored, nil
		}
	}

	t.Run("login by email", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		stubCredential(uow)

		result, err := newAuthCommands(uow).Login(context.Background(), commands.LoginParams{
			Credential: stored.Email,
			Password:   "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, stored.ID, result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("login by username", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		stubCredential(uow)

		_, err := newAuthCommands(uow).Login(context.Background(), commands.LoginParams{
			Credential: stored.Username,
			Password:   "password123",
		})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		stubCredential(uow)

		_, err := newAuthCommands(uow).Login(context.Background(), commands.LoginParams{
			Credential: stored.Email,
			Password:   "wrong-password",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown credential", func(t *testing.T) {
		uow := fake.NewUnitOfWork()

		_, err := newAuthCommands(uow).Login(context.Background(), commands.LoginParams{
			Credential: "nobody@example.com",
			Password:   "password123",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
