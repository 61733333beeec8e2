package assessment_fx

import (
	"entlead/internal/quizbank"
	"entlead/internal/repositories"
	"entlead/internal/services"

	mem "entlead/pkg/memcache"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCustomQuizRepo, provideCustomQuizService, provideAssessmentService)

func provideCustomQuizRepo(db *gorm.DB) repositories.CustomQuizRepository {
	return repositories.NewCustomQuizRepository(db)
}

func provideCustomQuizService(repo repositories.CustomQuizRepository) services.CustomQuizServiceInterface {
	return services.NewCustomQuizService(repo)
}

func provideAssessmentService(
	bank *quizbank.Bank,
	customRepo repositories.CustomQuizRepository,
	sessions mem.SessionStore,
	leadService services.LeadServiceInterface,
) services.AssessmentServiceInterface {
	return services.NewAssessmentService(bank, customRepo, sessions, leadService)
}
