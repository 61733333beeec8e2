package shortlink_fx

import (
	"os"

	"entlead/internal/repositories"
	"entlead/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideShortLinkRepo, provideShortLinkService)

func provideShortLinkRepo(db *gorm.DB) repositories.ShortLinkRepository {
	return repositories.NewShortLinkRepository(db)
}

func provideShortLinkService(repo repositories.ShortLinkRepository) services.ShortLinkServiceInterface {
	return services.NewShortLinkService(repo, os.Getenv("APP_BASE_URL"))
}
