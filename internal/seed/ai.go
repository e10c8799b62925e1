// ABOUTME: Optional OpenAI-backed rewriting of templated account notes.
// ABOUTME: Callers keep the template text whenever the API fails.

package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sashabaranov/go-openai"

	"github.com/2389/crmseed/internal/model"
)

// NoteWriter turns a templated draft into final note content.
type NoteWriter interface {
	Rewrite(ctx context.Context, acct *model.Account, draft string) (string, error)
}

// ChatCompleter is the slice of the OpenAI client the writer needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIWriter asks a chat model to rephrase each note as a sales rep would write it.
type OpenAIWriter struct {
	client ChatCompleter
	model  string
}

// NewOpenAIWriter creates a writer for the given API key and model.
func NewOpenAIWriter(apiKey, model string) *OpenAIWriter {
	return &OpenAIWriter{client: openai.NewClient(apiKey), model: model}
}

// NewOpenAIWriterWithClient wires a custom client, mostly for tests.
func NewOpenAIWriterWithClient(client ChatCompleter, model string) *OpenAIWriter {
	return &OpenAIWriter{client: client, model: model}
}

func (w *OpenAIWriter) Rewrite(ctx context.Context, acct *model.Account, draft string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite this CRM note about %s (%s industry) so it reads like a sales rep typed it after the interaction.
Keep every name, date, product, and number exactly as given. One to three sentences, plain text only.

Note: %s`, acct.CompanyName, acct.Industry, draft)

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a data generator. Respond with the rewritten note only, no markdown or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "seed: openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("seed: no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
