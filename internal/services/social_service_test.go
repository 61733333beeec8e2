package services

import (
	"context"
	"errors"
	"testing"

	"entlead/internal/models/request_models"
	"entlead/internal/quizbank"
	"entlead/pkg/utils"

	"github.com/stretchr/testify/require"
)

type fakeContentClient struct {
	payload string
	err     error
	calls   int
}

func (f *fakeContentClient) GenerateSocialJSON(_ context.Context, _, _, _ string, _ []string) (string, error) {
	f.calls++
	return f.payload, f.err
}

const socialPayload = `{"posts":[{"platform":"facebook","content":"Is your stuffy nose more than a cold? Take our 2-minute breathing quiz.","hashtags":["#ENT","#NasalHealth"]}]}`

func TestGeneratePostsPrimary(t *testing.T) {
	bank, err := quizbank.NewBank()
	require.NoError(t, err)

	primary := &fakeContentClient{payload: socialPayload}
	fallback := &fakeContentClient{payload: socialPayload}
	svc := NewSocialService(bank, primary, fallback)

	content, err := svc.GeneratePosts(context.Background(), request_models.SocialGenerateRequest{
		PracticeName: "Lakeside ENT",
		QuizType:     "NOSE",
		Platforms:    []string{"facebook"},
	})
	require.NoError(t, err)
	require.Len(t, content.Posts, 1)
	require.Equal(t, "facebook", content.Posts[0].Platform)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 0, fallback.calls)
}

func TestGeneratePostsFallsBack(t *testing.T) {
	bank, err := quizbank.NewBank()
	require.NoError(t, err)

	primary := &fakeContentClient{err: errors.New("rate limited")}
	fallback := &fakeContentClient{payload: socialPayload}
	svc := NewSocialService(bank, primary, fallback)

	content, err := svc.GeneratePosts(context.Background(), request_models.SocialGenerateRequest{
		PracticeName: "Lakeside ENT",
		QuizType:     "NOSE",
		Platforms:    []string{"facebook"},
	})
	require.NoError(t, err)
	require.Len(t, content.Posts, 1)
	require.Equal(t, 1, fallback.calls)
}

func TestGeneratePostsBothProvidersFail(t *testing.T) {
	bank, err := quizbank.NewBank()
	require.NoError(t, err)

	primary := &fakeContentClient{err: errors.New("rate limited")}
	fallback := &fakeContentClient{err: errors.New("quota exceeded")}
	svc := NewSocialService(bank, primary, fallback)

	_, err = svc.GeneratePosts(context.Background(), request_models.SocialGenerateRequest{
		PracticeName: "Lakeside ENT",
		QuizType:     "NOSE",
		Platforms:    []string{"facebook"},
	})
	require.ErrorIs(t, err, utils.ErrUpstreamFailure)
}

func TestGeneratePostsMalformedProviderJSON(t *testing.T) {
	bank, err := quizbank.NewBank()
	require.NoError(t, err)

	primary := &fakeContentClient{payload: "sure, here are your posts:"}
	svc := NewSocialService(bank, primary, nil)

	_, err = svc.GeneratePosts(context.Background(), request_models.SocialGenerateRequest{
		PracticeName: "Lakeside ENT",
		QuizType:     "NOSE",
		Platforms:    []string{"facebook"},
	})
	require.ErrorIs(t, err, utils.ErrUpstreamFailure)

	_, err = svc.GeneratePosts(context.Background(), request_models.SocialGenerateRequest{
		PracticeName: "Lakeside ENT",
		QuizType:     "NOPE",
		Platforms:    []string{"facebook"},
	})
	require.ErrorIs(t, err, utils.ErrQuizNotFound)
}
