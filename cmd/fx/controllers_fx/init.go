package controllers_fx

import (
	"entlead/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAssessmentController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewShortLinkController),
	fx.Provide(controllers.NewSEOController),
	fx.Provide(controllers.NewSocialController),
	fx.Provide(controllers.NewDoctorController),
	fx.Provide(controllers.NewDashboardController))
