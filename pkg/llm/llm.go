package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Action is the assistant intent produced for a transcript.
type Action string

const (
	ActionScheduleMeeting Action = "schedule_meeting"
	ActionFetchCalendar   Action = "fetch_calendar"
	ActionGeneralResponse Action = "general_response"
)

const systemPrompt = "You are a helpful voice meeting assistant." +
	" Respond in JSON with keys 'action' and 'reply'." +
	" action should be one of ['schedule_meeting','fetch_calendar','general_response']." +
	" reply should be concise and user-friendly."

// Config holds OpenAI connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client classifies user transcripts into assistant actions.
type Client struct {
	client *openai.Client
	model  string
}

// New creates an intent client. Model defaults to gpt-4o-mini.
func New(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

type actionReply struct {
	Action string `json:"action"`
	Reply  string `json:"reply"`
}

// GenerateActionReply asks the model for an action and a spoken reply for the
// given transcript. Unparseable model output degrades to a general response
// carrying the raw text.
func (c *Client) GenerateActionReply(ctx context.Context, userText string) (Action, string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		MaxTokens:   300,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", "", err
	}
	if len(resp.Choices) == 0 {
		return ActionGeneralResponse, "I could not process that request.", nil
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	action, reply := parseActionReply(content)
	return action, reply, nil
}

func parseActionReply(content string) (Action, string) {
	action := ActionGeneralResponse
	reply := content

	// Models sometimes wrap JSON in a markdown fence.
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	var data actionReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(trimmed)), &data); err == nil {
		switch Action(data.Action) {
		case ActionScheduleMeeting, ActionFetchCalendar, ActionGeneralResponse:
			action = Action(data.Action)
		}
		if data.Reply != "" {
			reply = data.Reply
		}
	}
	return action, reply
}
