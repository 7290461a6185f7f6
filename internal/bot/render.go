// internal/bot/render.go
package bot

import (
	"fmt"
	"strings"

	"discord-rover/internal/assistant"
	"discord-rover/internal/discover"
	"discord-rover/internal/query"
)

// RenderResponse formats a query response as Discord-flavored text. Pure
// function so the formatting is testable without a live session.
func RenderResponse(resp query.Response) string {
	var b strings.Builder

	switch resp.Type {
	case "error":
		b.WriteString("⚠️ " + resp.Message)
	case "navigation":
		b.WriteString(resp.Message)
		if resp.Navigation != nil {
			fmt.Fprintf(&b, "\nJumping to %s **%s**", resp.Navigation.Type, resp.Navigation.Name)
		}
	case "threads":
		b.WriteString(resp.Message)
		for i, th := range resp.Threads {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "\n\n**%s** — #%s in %s", th.Topic, th.Channel, th.Server)
			fmt.Fprintf(&b, "\n%d messages from %s", len(th.Messages), strings.Join(th.Participants, ", "))
			if th.StartTime != "" {
				fmt.Fprintf(&b, " (%s – %s)", th.StartTime, th.EndTime)
			}
		}
	default:
		b.WriteString(resp.Message)
		for i, r := range resp.Results {
			if i >= 10 {
				break
			}
			switch r.Type {
			case "message":
				fmt.Fprintf(&b, "\n\n**%s** in #%s (%s)", r.Title, r.Channel, r.Server)
				fmt.Fprintf(&b, "\n> %s", truncate(r.Content, 200))
				if r.Timestamp != "" {
					fmt.Fprintf(&b, "\n*%s*", r.Timestamp)
				}
			case "server":
				fmt.Fprintf(&b, "\n\n🌐 **%s**", r.Title)
				if r.Content != "" {
					fmt.Fprintf(&b, " — %s", truncate(r.Content, 150))
				}
			case "channel":
				fmt.Fprintf(&b, "\n\n#%s in %s", r.Title, r.Server)
				if r.Content != "" {
					fmt.Fprintf(&b, " — %s", truncate(r.Content, 150))
				}
			}
		}
	}

	if len(resp.Suggestions) > 0 {
		b.WriteString("\n\n*Try:*")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}

	return b.String()
}

// RenderRecommendations formats discovery output for a channel message.
func RenderRecommendations(recs []discover.Recommendation) string {
	if len(recs) == 0 {
		return "No servers matched. Try broader interests!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d server(s) you might like:", len(recs))
	for _, rec := range recs {
		fmt.Fprintf(&b, "\n\n🌐 **%s**", rec.Server.Name)
		if rec.Category != "" {
			fmt.Fprintf(&b, " · %s", rec.Category)
		}
		if rec.Activity != "" {
			fmt.Fprintf(&b, " · %s activity", rec.Activity)
		}
		if len(rec.Reasons) > 0 {
			fmt.Fprintf(&b, "\n%s", strings.Join(rec.Reasons, " · "))
		}
		if rec.Vibe != "" {
			fmt.Fprintf(&b, "\n*%s*", rec.Vibe)
		}
	}
	return b.String()
}

// RenderModerationReport formats a channel-health report.
func RenderModerationReport(channelName string, report assistant.ModerationReport) string {
	var b strings.Builder
	if channelName != "" {
		fmt.Fprintf(&b, "Health of #%s: **%.0f/100**", channelName, report.HealthScore)
	} else {
		fmt.Fprintf(&b, "Channel health: **%.0f/100**", report.HealthScore)
	}
	if len(report.FlaggedUsers) == 0 {
		b.WriteString("\nNo flagged users. Looking good!")
		return b.String()
	}
	b.WriteString("\nFlagged users:")
	for _, f := range report.FlaggedUsers {
		fmt.Fprintf(&b, "\n• **%s** — %s", f.User, f.Reason)
	}
	return b.String()
}

// truncate limits s to n runes. Cutting at byte offsets could split a
// multi-byte rune and send invalid UTF-8 to Discord.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
