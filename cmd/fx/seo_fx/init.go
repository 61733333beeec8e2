package seo_fx

import (
	"os"

	"entlead/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideSEOService)

func provideSEOService() services.SEOServiceInterface {
	return services.NewSEOService(os.Getenv("SEO_AUDIT_URL"))
}
