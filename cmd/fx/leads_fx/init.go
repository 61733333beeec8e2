package leads_fx

import (
	"os"

	"entlead/internal/repositories"
	"entlead/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideLeadRepo, providePartialRepo, provideLeadService)

func provideLeadRepo(db *gorm.DB) repositories.LeadRepository {
	return repositories.NewLeadRepository(db)
}

func providePartialRepo(db *gorm.DB) repositories.PartialSubmissionRepository {
	return repositories.NewPartialSubmissionRepository(db)
}

func provideLeadService(
	leadRepo repositories.LeadRepository,
	partialRepo repositories.PartialSubmissionRepository,
	doctorRepo repositories.DoctorRepository,
	mailService services.IMailService,
) services.LeadServiceInterface {
	return services.NewLeadService(leadRepo, partialRepo, doctorRepo, mailService, os.Getenv("CRM_WEBHOOK_URL"))
}
