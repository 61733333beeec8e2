package quizbank_fx

import (
	"log"

	"entlead/internal/quizbank"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideBank)

func provideBank() *quizbank.Bank {
	bank, err := quizbank.NewBank()
	if err != nil {
		log.Fatalf("Failed to load quiz definitions: %v", err)
	}
	return bank
}
