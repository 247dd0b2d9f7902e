package bootstrap

import (
	"webmall/internal/infra/identity"
	"webmall/internal/pkg/config"
	"webmall/internal/pkg/idtoken"
	"webmall/internal/usecase/commands"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			NewIdentityClient,
			fx.As(new(commands.IdentityClient)),
		),
		fx.Annotate(
			NewTokenService,
			fx.As(new(commands.TokenVerifier)),
		),
	),
)

func NewIdentityClient(cfg config.Config) *identity.Client {
	return identity.NewClient(cfg.Identity)
}

func NewTokenService(cfg config.Config) *idtoken.Service {
	return idtoken.NewService(cfg.Identity.JWTSecret)
}
