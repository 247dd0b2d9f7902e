package commands

import (
	"context"
	"mime/multipart"

	"webmall/internal/infra/identity"
	"webmall/internal/pkg/idtoken"
)

// IdentityClient is the outbound port to the external identity provider.
type IdentityClient interface {
	PasswordGrant(ctx context.Context, email, password string) (*identity.TokenPair, error)
}

// TokenVerifier checks provider-issued access tokens locally.
type TokenVerifier interface {
	Verify(tokenString string) (*idtoken.Claims, error)
}

// ImageStore persists uploaded images and returns their public URL.
type ImageStore interface {
	SaveImage(file *multipart.FileHeader) (string, error)
}
