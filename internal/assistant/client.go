// internal/assistant/client.go
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChannelContext is the context envelope sent with every assistant request.
type ChannelContext struct {
	ChannelName string           `json:"channelName"`
	ServerName  string           `json:"serverName"`
	ServerID    string           `json:"serverId,omitempty"`
	Messages    []ContextMessage `json:"messages"`
	Rules       string           `json:"rules,omitempty"`
}

// ContextMessage is one message of recent channel history.
type ContextMessage struct {
	ID      int    `json:"id"`
	User    string `json:"user"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// Request is the assistant backend request body.
type Request struct {
	RequestType    string         `json:"requestType"`
	ChannelContext ChannelContext `json:"channelContext"`
	ActionDetails  string         `json:"actionDetails,omitempty"`
}

// Client talks to the external chat-completion backend. It is the only
// network boundary in the system; every engine below it is synchronous and
// local.
type Client struct {
	ai    *openai.Client
	model string
}

func NewClient(apiKey string) *Client {
	return &Client{
		ai:    openai.NewClient(apiKey),
		model: openai.GPT4oMini,
	}
}

// NewClientWithBase points the client at a custom backend endpoint.
func NewClientWithBase(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		ai:    openai.NewClientWithConfig(cfg),
		model: openai.GPT4oMini,
	}
}

// Reply sends a request and returns the final reply text.
func (c *Client) Reply(ctx context.Context, req Request) (string, error) {
	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    promptFor(req),
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// StreamReply streams the reply, invoking onDelta with the cumulative text
// after every chunk, in arrival order. Callers display the latest
// cumulative text only; there is no merging of out-of-order chunks. Returns
// the final text.
func (c *Client) StreamReply(ctx context.Context, req Request, onDelta func(cumulative string)) (string, error) {
	stream, err := c.ai.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    promptFor(req),
		MaxTokens:   500,
		Temperature: 0.7,
		Stream:      true,
	})
	if err != nil {
		return "", fmt.Errorf("assistant stream failed: %w", err)
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("assistant stream failed: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		sb.WriteString(chunk.Choices[0].Delta.Content)
		if onDelta != nil {
			onDelta(sb.String())
		}
	}
	return sb.String(), nil
}

// Embed produces a vector embedding for archive similarity lookups.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.ai.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.AdaEmbeddingV2,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response was empty")
	}
	return resp.Data[0].Embedding, nil
}

func promptFor(req Request) []openai.ChatCompletionMessage {
	cctx := req.ChannelContext

	var history strings.Builder
	for _, m := range cctx.Messages {
		fmt.Fprintf(&history, "[%s] %s: %s\n", m.Time, m.User, m.Content)
	}

	system := fmt.Sprintf(`You are ROVER, the assistant for the "%s" server.
You are answering in the #%s channel.

Recent channel history:
%s
Guidelines:
- Be friendly and conversational
- Reference the channel history when it helps
- Keep responses concise`, cctx.ServerName, cctx.ChannelName, history.String())
	if cctx.Rules != "" {
		system += "\n\nServer rules:\n" + cctx.Rules
	}

	user := req.ActionDetails
	if user == "" {
		user = "Respond to the latest message in the channel."
	}

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}
