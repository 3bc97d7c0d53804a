package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// AuthSession is returned by sign-up and sign-in.
type AuthSession struct {
	User      entities.User
	Token     string
	ExpiresAt time.Time
}

type IAccountUseCase interface {
	SignUp(ctx context.Context, email, password string) (AuthSession, error)
	SignIn(ctx context.Context, email, password string) (AuthSession, error)
}

type AccountUseCase struct {
	ws       *Workspace
	tokens   interfaces.ITokenIssuer
	hashCost int
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(ws *Workspace, tokens interfaces.ITokenIssuer) *AccountUseCase {
	return &AccountUseCase{ws: ws, tokens: tokens, hashCost: bcrypt.DefaultCost}
}

// SignUp registers a new account. Emails are unique case-insensitively and
// the user's order counter starts at zero.
func (u *AccountUseCase) SignUp(ctx context.Context, email, password string) (AuthSession, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return AuthSession{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return AuthSession{}, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return AuthSession{}, err
	}

	var user entities.User
	err = u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		if ds.FindUserByEmail(email) != nil {
			return ErrEmailAlreadyRegistered
		}
		user = entities.User{
			ID:           newID(),
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
		ds.Users = append(ds.Users, user)
		ds.Counters[user.ID] = 0
		return nil
	})
	if err != nil {
		return AuthSession{}, err
	}
	return u.session(user)
}

func (u *AccountUseCase) SignIn(ctx context.Context, email, password string) (AuthSession, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return AuthSession{}, ErrInvalidEmail
	}

	ds, err := u.ws.read(ctx)
	if err != nil {
		return AuthSession{}, err
	}
	found := ds.FindUserByEmail(email)
	if found == nil {
		return AuthSession{}, ErrUserNotFound
	}
	user := *found
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
			return AuthSession{}, ErrInvalidCredentials
		}
		return AuthSession{}, err
	}
	return u.session(user)
}

func (u *AccountUseCase) session(user entities.User) (AuthSession, error) {
	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		return AuthSession{}, err
	}
	user.PasswordHash = ""
	return AuthSession{User: user, Token: token, ExpiresAt: exp}, nil
}
