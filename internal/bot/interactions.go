// internal/bot/interactions.go
package bot

import (
	"context"
	"log"

	"discord-rover/internal/assistant"

	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "search":
		h.handleSearchInteraction(s, i)
	case "threads":
		h.handleThreadsInteraction(s, i)
	case "discover":
		h.handleDiscoverInteraction(s, i)
	case "health":
		h.handleHealthInteraction(s, i)
	case "ask":
		h.handleAskInteraction(s, i)
	}
}

// ack acknowledges the interaction immediately so the 3-second deadline
// doesn't expire while the engines run.
func (h *Handler) ack(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Error responding to interaction: %v", err)
		return false
	}
	return true
}

func (h *Handler) finish(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if content == "" {
		content = "Nothing to show."
	}
	// Discord's 2000-character limit counts characters, not bytes.
	content = truncate(content, 2000)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("Error editing interaction response: %v", err)
	}
}

func optionValue(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func (h *Handler) handleSearchInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.ack(s, i) {
		return
	}
	input := optionValue(i, "query")
	if input == "" {
		h.finish(s, i, "Please provide a search query!")
		return
	}

	resp := h.processor.Process(input, h.ambientContext(s, i.GuildID, i.ChannelID))
	h.finish(s, i, RenderResponse(resp))

	user := interactionUser(i)
	h.logInteraction(i.GuildID, i.ChannelID, user.ID, user.Username, string(respIntent(resp)), input, resp.Message)
}

func (h *Handler) handleThreadsInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.ack(s, i) {
		return
	}
	topic := optionValue(i, "topic")
	if topic == "" {
		h.finish(s, i, "Please provide a topic!")
		return
	}

	resp := h.processor.Process("find threads about "+topic, h.ambientContext(s, i.GuildID, i.ChannelID))
	h.finish(s, i, RenderResponse(resp))
}

func (h *Handler) handleDiscoverInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.ack(s, i) {
		return
	}
	recs := h.discover.DiscoveryRecommendations(optionValue(i, "interests"))
	if len(recs) > 5 {
		recs = recs[:5]
	}
	h.finish(s, i, RenderRecommendations(recs))
}

func (h *Handler) handleHealthInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.ack(s, i) {
		return
	}

	ambient := h.ambientContext(s, i.GuildID, i.ChannelID)
	cctx := assistant.ChannelContext{
		ChannelName: ambient.ChannelName,
		ServerName:  ambient.ServerName,
		ServerID:    i.GuildID,
		Messages:    h.recentContext(i.GuildID, i.ChannelID),
	}

	report, err := h.assistant.AnalyzeChannel(context.Background(), assistant.Request{
		RequestType:    "moderation",
		ChannelContext: cctx,
	})
	if err != nil {
		log.Printf("Error from moderation backend, using local report: %v", err)
		report = assistant.LocalModerationReport(cctx)
	}

	h.finish(s, i, RenderModerationReport(ambient.ChannelName, report))
}

func (h *Handler) handleAskInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.ack(s, i) {
		return
	}
	question := optionValue(i, "question")
	if question == "" {
		h.finish(s, i, "Please provide a question!")
		return
	}

	ambient := h.ambientContext(s, i.GuildID, i.ChannelID)
	req := assistant.Request{
		RequestType: "chat",
		ChannelContext: assistant.ChannelContext{
			ChannelName: ambient.ChannelName,
			ServerName:  ambient.ServerName,
			ServerID:    i.GuildID,
			Messages:    h.assistantContext(i.GuildID, i.ChannelID, question),
		},
		ActionDetails: question,
	}

	reply, err := h.assistant.Reply(context.Background(), req)
	if err != nil {
		log.Printf("Error from assistant: %v", err)
		h.finish(s, i, assistant.UserMessage(assistant.Categorize(err)))
		return
	}

	h.finish(s, i, reply)
	user := interactionUser(i)
	h.logInteraction(i.GuildID, i.ChannelID, user.ID, user.Username, "ask", question, reply)
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
