package quizbank

import (
	"testing"

	"entlead/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankLoadsAllInstruments(t *testing.T) {
	bank, err := NewBank()
	require.NoError(t, err)

	for _, id := range []string{"NOSE", "SNOT12", "SNOT22", "TNSS", "EPWORTH"} {
		def, err := bank.Get(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Questions, id)
	}
	assert.Len(t, bank.IDs(), 5)
}

func TestBankMaxScoreInvariant(t *testing.T) {
	bank, err := NewBank()
	require.NoError(t, err)

	for _, id := range bank.IDs() {
		def, err := bank.Get(id)
		require.NoError(t, err)

		rawMax := 0
		for _, question := range def.Questions {
			require.NotEmpty(t, question.Options, "%s: every question needs options", id)
			best := question.Options[0].Value
			for _, opt := range question.Options {
				if opt.Value > best {
					best = opt.Value
				}
			}
			rawMax += best
		}
		assert.Equal(t, def.MaxScore, rawMax*def.ScoreMultiplier, id)
	}
}

func TestBankNOSEShape(t *testing.T) {
	bank, err := NewBank()
	require.NoError(t, err)

	def, err := bank.Get("NOSE")
	require.NoError(t, err)

	assert.Len(t, def.Questions, 5)
	assert.Equal(t, 100, def.MaxScore)
	assert.Equal(t, 5, def.ScoreMultiplier)

	// Position-encoded options: value equals zero-based index.
	for _, question := range def.Questions {
		require.Len(t, question.Options, 5)
		for i, opt := range question.Options {
			assert.Equal(t, i, opt.Value)
		}
	}
}

func TestBankUnknownQuiz(t *testing.T) {
	bank, err := NewBank()
	require.NoError(t, err)

	_, err = bank.Get("ROSACEA")
	assert.ErrorIs(t, err, utils.ErrQuizNotFound)
}

func TestBankTriageTargetsExist(t *testing.T) {
	bank, err := NewBank()
	require.NoError(t, err)

	triage := bank.Triage()
	require.NotEmpty(t, triage.Options)
	for _, opt := range triage.Options {
		_, err := bank.Get(opt.Quiz)
		assert.NoError(t, err, opt.Quiz)
	}
}
