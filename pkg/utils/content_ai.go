package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// ContentClientInterface abstracts the AI provider used for social post
// generation so OpenAI and Gemini are interchangeable.
type ContentClientInterface interface {
	GenerateSocialJSON(ctx context.Context, practiceName, quizTitle, topic string, platforms []string) (string, error)
}

const socialSchema = `
{
  "posts": [
    {"platform":"facebook","content":"post text","hashtags":["tag1","tag2"]}
  ]
}`

func socialPrompt(practiceName, quizTitle, topic string, platforms []string) string {
	extra := ""
	if topic != "" {
		extra = fmt.Sprintf("Work this angle into the posts: %s.\n", topic)
	}

	return fmt.Sprintf(`
You are a social media manager for an ENT medical practice. Return **JSON only**
that exactly matches the schema below. Write one post per requested platform,
inviting patients to take the free online "%s" symptom assessment offered by %s.
Keep a warm, professional tone. No medical claims, no diagnoses, no emojis on
LinkedIn. 3-5 relevant hashtags per post.
%s
Schema (example, match keys exactly):
%s

Requested platforms: %s

Return JSON only. No comments, no markdown.
`, quizTitle, practiceName, extra, socialSchema, strings.Join(platforms, ", "))
}

// ---------------- OpenAI ----------------

type OpenAIContentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIContentClient(apiKey, model string) ContentClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIContentClient) GenerateSocialJSON(ctx context.Context, practiceName, quizTitle, topic string, platforms []string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: socialPrompt(practiceName, quizTitle, topic, platforms),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content")
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

// ---------------- Gemini ----------------

type GeminiContentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiContentClient(apiKey, model string) (ContentClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiContentClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiContentClient) GenerateSocialJSON(ctx context.Context, practiceName, quizTitle, topic string, platforms []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(socialPrompt(practiceName, quizTitle, topic, platforms)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}
