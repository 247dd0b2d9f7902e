package bootstrap

import (
	"webmall/internal/infra/storage"
	"webmall/internal/pkg/config"
	"webmall/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewImageStore,
			fx.As(new(commands.ImageStore)),
		),
	),
)

func NewImageStore(cfg config.Config) (*storage.LocalStore, error) {
	return storage.NewLocalStore(cfg.Upload)
}
