// internal/assistant/moderation.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ModerationReport is the backend's channel-health analysis.
type ModerationReport struct {
	HealthScore  float64       `json:"healthScore"`
	FlaggedUsers []FlaggedUser `json:"flaggedUsers"`
}

type FlaggedUser struct {
	User   string `json:"user"`
	Reason string `json:"reason"`
}

const moderationPrompt = `Analyze the channel history and respond with strict JSON:
{"healthScore": <0-100>, "flaggedUsers": [{"user": "...", "reason": "..."}]}
No markdown, no explanations.`

// AnalyzeChannel asks the backend for a moderation report. When the remote
// call fails, callers should fall back to LocalModerationReport so the UI
// can still make forward progress.
func (c *Client) AnalyzeChannel(ctx context.Context, req Request) (ModerationReport, error) {
	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: append(promptFor(req), openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: moderationPrompt,
		}),
		MaxTokens: 300,
	})
	if err != nil {
		return ModerationReport{}, fmt.Errorf("moderation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ModerationReport{}, fmt.Errorf("moderation response was empty")
	}

	var report ModerationReport
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &report); err != nil {
		return ModerationReport{}, fmt.Errorf("parse moderation response: %w", err)
	}
	return report, nil
}

// LocalModerationReport is the deterministic offline fallback. It starts
// from a healthy baseline and deducts for link-heavy and shouty messages,
// flagging the worst offenders. Same input, same report.
func LocalModerationReport(cctx ChannelContext) ModerationReport {
	score := 90.0
	penalties := make(map[string]int)

	for _, m := range cctx.Messages {
		if strings.Contains(m.Content, "http://") || strings.Contains(m.Content, "https://") {
			score -= 3
			penalties[m.User]++
		}
		if isShouting(m.Content) {
			score -= 2
			penalties[m.User]++
		}
	}
	if score < 0 {
		score = 0
	}

	users := make([]string, 0, len(penalties))
	for u, n := range penalties {
		if n >= 2 {
			users = append(users, u)
		}
	}
	sort.Strings(users)

	report := ModerationReport{HealthScore: score, FlaggedUsers: []FlaggedUser{}}
	for _, u := range users {
		report.FlaggedUsers = append(report.FlaggedUsers, FlaggedUser{
			User:   u,
			Reason: "repeated link posting or shouting",
		})
	}
	return report
}

// isShouting reports whether a message is mostly uppercase letters.
func isShouting(content string) bool {
	letters, upper := 0, 0
	for _, r := range content {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
			upper++
		case r >= 'a' && r <= 'z':
			letters++
		}
	}
	return letters >= 8 && upper*10 >= letters*8
}
