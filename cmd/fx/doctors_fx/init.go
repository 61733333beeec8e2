package doctors_fx

import (
	"entlead/internal/repositories"
	"entlead/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDoctorRepo, provideDoctorService)

func provideDoctorRepo(db *gorm.DB) repositories.DoctorRepository {
	return repositories.NewDoctorRepository(db)
}

func provideDoctorService(doctorRepo repositories.DoctorRepository) services.DoctorServiceInterface {
	return services.NewDoctorService(doctorRepo)
}
