package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"sjsage522/courseadvisor/logger"
	"sjsage522/courseadvisor/pkg/errors"
)

// OpenAIClient implements Completer against the chat completions API
type OpenAIClient struct {
	http  *resty.Client
	model string
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIClient creates a client for baseURL (".../v1") using apiKey
func NewOpenAIClient(baseURL, apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.NewConfiguration("OPENAI_API_KEY not set", nil)
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(60 * time.Second)

	return &OpenAIClient{http: client, model: model}, nil
}

// Complete sends the conversation and returns the assistant's reply
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (Message, error) {
	var parsed chatResponse
	var failure apiError

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{Model: c.model, Messages: messages}).
		SetResult(&parsed).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		return Message{}, errors.NewCompletion("request failed", err)
	}
	if res.IsError() {
		msg := fmt.Sprintf("unexpected status %d", res.StatusCode())
		if failure.Error.Message != "" {
			msg += ": " + failure.Error.Message
		}
		return Message{}, errors.NewCompletion(msg, nil)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Message{}, errors.NewCompletion("empty completion", nil)
	}

	reply := parsed.Choices[0].Message
	if reply.Role == "" {
		reply.Role = RoleAssistant
	}

	logger.ForAdvisor().Debug().
		Str("model", c.model).
		Int("messages", len(messages)).
		Int("reply_length", len(reply.Content)).
		Msg("Completion received")

	return reply, nil
}
