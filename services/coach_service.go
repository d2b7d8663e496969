package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Persona shared by every coach request; keeps the assistant on health and
// fitness topics.
const coachSystemPrompt = `You are a friendly, supportive health and fitness coach in the Friskly app.
Your role is to provide expert advice on nutrition, fitness, and healthy lifestyle choices.
Always be encouraging, positive, and respectful in your responses.
Focus only on health and fitness topics, and avoid giving medical advice.
If asked about topics outside your expertise, gently redirect the conversation back to health and fitness.
Use a conversational, supportive tone that makes users feel comfortable and motivated.
Provide specific, actionable advice when possible.`

const (
	coachModel       = openai.GPT4o
	coachTemperature = 0.7
	adviceMaxTokens  = 300
	chatMaxTokens    = 500
)

type CoachService struct {
	client *openai.Client
}

func NewCoachService() *CoachService {
	return &CoachService{client: openai.NewClient(os.Getenv("OPENAI_API_KEY"))}
}

// ChatMessage is one prior turn of a coach conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// StreamHandler receives incremental advice delivery. Zero or more OnToken
// calls are followed by exactly one terminal call, either OnComplete with the
// full text or OnError.
type StreamHandler struct {
	OnToken    func(token string)
	OnComplete func(full string)
	OnError    func(err error)
}

// FoodAdvice asks the coach for commentary on a list of food names.
func (s *CoachService) FoodAdvice(ctx context.Context, foodNames []string) (string, error) {
	if len(foodNames) == 0 {
		return "", &ValidationError{Reason: "at least one food name is required"}
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       coachModel,
		Temperature: coachTemperature,
		MaxTokens:   adviceMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: coachSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: advicePrompt(foodNames)},
		},
	})
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Service: "openai", Body: "empty completion"}
	}
	return resp.Choices[0].Message.Content, nil
}

// Chat holds a general coach conversation with prior turns replayed.
func (s *CoachService) Chat(ctx context.Context, message string, history []ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &ValidationError{Reason: "message must not be empty"}
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: coachSystemPrompt})
	for _, h := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: h.Role, Content: h.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       coachModel,
		Temperature: coachTemperature,
		MaxTokens:   chatMaxTokens,
		Messages:    msgs,
	})
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Service: "openai", Body: "empty completion"}
	}
	return resp.Choices[0].Message.Content, nil
}

// StreamFoodAdvice delivers the advice incrementally through the handler.
// Chunk boundaries are whatever the upstream emits, not word-aligned. If ctx
// is canceled the producer stops without a terminal call, since the consumer
// that canceled is already gone.
func (s *CoachService) StreamFoodAdvice(ctx context.Context, foodNames []string, h StreamHandler) {
	if len(foodNames) == 0 {
		h.OnError(&ValidationError{Reason: "at least one food name is required"})
		return
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       coachModel,
		Temperature: coachTemperature,
		MaxTokens:   adviceMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: coachSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: advicePrompt(foodNames)},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.OnError(wrapOpenAIError(err))
		return
	}
	defer stream.Close()

	var full strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			h.OnComplete(full.String())
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			h.OnError(wrapOpenAIError(err))
			return
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		token := chunk.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		full.WriteString(token)
		h.OnToken(token)
	}
}

func advicePrompt(foodNames []string) string {
	return fmt.Sprintf(
		"Provide brief, helpful nutritional advice about these foods: %s. "+
			"Include key nutrients, benefits, and how they fit into a balanced diet. Keep it concise and positive.",
		strings.Join(foodNames, ", "))
}

func wrapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ServiceError{Service: "openai", Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	return &ServiceError{Service: "openai", Body: err.Error()}
}
