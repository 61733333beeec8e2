package social_fx

import (
	"log"
	"os"

	"entlead/internal/quizbank"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideSocialService)

func provideSocialService(bank *quizbank.Bank) services.SocialServiceInterface {
	primary := utils.NewOpenAIContentClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))

	var fallback utils.ContentClientInterface
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := utils.NewGeminiContentClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Failed to initialize Gemini fallback: %v", err)
		} else {
			fallback = gemini
		}
	}

	return services.NewSocialService(bank, primary, fallback)
}
