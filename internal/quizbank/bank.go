package quizbank

import (
	_ "embed"
	"fmt"

	"entlead/pkg/utils"

	"gopkg.in/yaml.v3"
)

//go:embed definitions.yaml
var definitionsYAML []byte

type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Option struct {
	Text  string `yaml:"text"`
	Value int    `yaml:"value"`
}

type Question struct {
	Text    string   `yaml:"text"`
	Options []Option `yaml:"options"`
}

type Threshold struct {
	Severity Severity `yaml:"severity"`
	MinScore int      `yaml:"minScore"`
}

// QuizDefinition is an immutable assessment instrument. Questions and
// thresholds keep the canonical ordering of the published instrument.
type QuizDefinition struct {
	ID              string              `yaml:"id"`
	Title           string              `yaml:"title"`
	Description     string              `yaml:"description"`
	MaxScore        int                 `yaml:"maxScore"`
	ScoreMultiplier int                 `yaml:"scoreMultiplier"`
	Scale           []string            `yaml:"scale"`
	Questions       []Question          `yaml:"questions"`
	Thresholds      []Threshold         `yaml:"thresholds"`
	Interpretations map[Severity]string `yaml:"interpretations"`
}

type TriageOption struct {
	Text string `yaml:"text"`
	Quiz string `yaml:"quiz"`
}

type TriageQuestion struct {
	Text    string         `yaml:"text"`
	Options []TriageOption `yaml:"options"`
}

type bankFile struct {
	Triage  TriageQuestion    `yaml:"triage"`
	Quizzes []*QuizDefinition `yaml:"quizzes"`
}

type Bank struct {
	quizzes map[string]*QuizDefinition
	triage  TriageQuestion
}

func NewBank() (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(definitionsYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing quiz definitions: %w", err)
	}

	bank := &Bank{
		quizzes: make(map[string]*QuizDefinition, len(file.Quizzes)),
		triage:  file.Triage,
	}

	for _, quiz := range file.Quizzes {
		if quiz.ScoreMultiplier == 0 {
			quiz.ScoreMultiplier = 1
		}
		expandScale(quiz)
		if err := validate(quiz); err != nil {
			return nil, err
		}
		bank.quizzes[quiz.ID] = quiz
	}

	for _, opt := range bank.triage.Options {
		if _, ok := bank.quizzes[opt.Quiz]; !ok {
			return nil, fmt.Errorf("triage option %q targets unknown quiz %q", opt.Text, opt.Quiz)
		}
	}

	return bank, nil
}

// expandScale fills in position-encoded options for questions that rely
// on the instrument's shared Likert scale: option value = zero-based index.
func expandScale(quiz *QuizDefinition) {
	if len(quiz.Scale) == 0 {
		return
	}
	for i := range quiz.Questions {
		if len(quiz.Questions[i].Options) > 0 {
			continue
		}
		options := make([]Option, 0, len(quiz.Scale))
		for value, label := range quiz.Scale {
			options = append(options, Option{Text: label, Value: value})
		}
		quiz.Questions[i].Options = options
	}
}

func validate(quiz *QuizDefinition) error {
	if quiz.ID == "" {
		return fmt.Errorf("quiz definition without id")
	}
	if len(quiz.Questions) == 0 {
		return fmt.Errorf("quiz %s has no questions", quiz.ID)
	}

	rawMax := 0
	for i, question := range quiz.Questions {
		if len(question.Options) == 0 {
			return fmt.Errorf("quiz %s question %d has no options", quiz.ID, i)
		}
		best := question.Options[0].Value
		for _, opt := range question.Options {
			if opt.Value > best {
				best = opt.Value
			}
		}
		rawMax += best
	}

	if rawMax*quiz.ScoreMultiplier != quiz.MaxScore {
		return fmt.Errorf("quiz %s maxScore %d does not match option values (%d x %d)",
			quiz.ID, quiz.MaxScore, rawMax, quiz.ScoreMultiplier)
	}

	for i := 1; i < len(quiz.Thresholds); i++ {
		if quiz.Thresholds[i].MinScore <= quiz.Thresholds[i-1].MinScore {
			return fmt.Errorf("quiz %s thresholds are not strictly ascending", quiz.ID)
		}
	}

	return nil
}

func (b *Bank) Get(quizType string) (*QuizDefinition, error) {
	quiz, ok := b.quizzes[quizType]
	if !ok {
		return nil, utils.ErrQuizNotFound
	}
	return quiz, nil
}

func (b *Bank) Triage() TriageQuestion {
	return b.triage
}

// IDs lists the registered instrument identifiers.
func (b *Bank) IDs() []string {
	ids := make([]string, 0, len(b.quizzes))
	for id := range b.quizzes {
		ids = append(ids, id)
	}
	return ids
}
