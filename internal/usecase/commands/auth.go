package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"webmall/internal/domain/user"
	"webmall/internal/infra"
	"webmall/internal/infra/identity"
	"webmall/internal/pkg/errs"
	"webmall/internal/usecase/queries"
	"webmall/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrProviderUnavailable  = errs.New("identity provider unavailable")
)

// Authenticator is the narrow surface the auth middleware depends on.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*shared.AuthenticatedUser, error)
}

type AuthCommands interface {
	Authenticator
	Login(ctx context.Context, email, password string) (*identity.TokenPair, error)
}

type authCommandsImpl struct {
	provider  IdentityClient
	tokens    TokenVerifier
	readStore queries.UserReadStore
	uow       shared.UnitOfWork
}

func NewAuthCommands(
	provider IdentityClient,
	tokens TokenVerifier,
	readStore queries.UserReadStore,
	uow shared.UnitOfWork,
) AuthCommands {
	return &authCommandsImpl{
		provider:  provider,
		tokens:    tokens,
		readStore: readStore,
		uow:       uow,
	}
}

// Login forwards the credentials to the identity provider. No password ever
// touches the local database.
func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*identity.TokenPair, error) {
	pair, err := a.provider.PasswordGrant(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrProviderUnavailable)
	}
	return pair, nil
}

// Authenticate verifies the access token and resolves the local identity,
// provisioning a customer row on the first sighting of a subject. Email and
// verification state come from the token; role and name stay local. All
// failure modes collapse into ErrAuthenticationFailed so callers cannot be
// used as an oracle.
func (a *authCommandsImpl) Authenticate(ctx context.Context, accessToken string) (*shared.AuthenticatedUser, error) {
	claims, err := a.tokens.Verify(accessToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	subject, err := claims.SubjectID()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.readStore.FindBySubject(ctx, subject)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		view, err = a.provision(ctx, subject, claims.Email, claims.UserMetadata.Name)
		if err != nil {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		slog.Error("user row carries unknown role", "user_id", view.ID, "role", view.Role)
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &shared.AuthenticatedUser{
		ID:            view.ID,
		Subject:       subject,
		Email:         claims.Email,
		Name:          view.Name,
		Role:          role,
		EmailVerified: claims.EmailVerified,
	}, nil
}

func (a *authCommandsImpl) provision(ctx context.Context, subject uuid.UUID, email, name string) (*queries.UserAccountView, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	newUser := user.NewUser(subject, emailVO, name, user.RoleCustomer)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	// Re-read the row: a concurrent first request may have won the insert,
	// and the stored role is the only authoritative one.
	return a.readStore.FindBySubject(ctx, subject)
}
