// internal/bot/handler.go
package bot

import (
	"context"
	"log"
	"strings"
	"time"

	"discord-rover/internal/assistant"
	"discord-rover/internal/database"
	"discord-rover/internal/discover"
	"discord-rover/internal/models"
	"discord-rover/internal/query"

	"github.com/bwmarrin/discordgo"
	"github.com/pgvector/pgvector-go"
)

// Handler wires the query engines to a live Discord session. The database
// is optional; without it the bot simply skips archiving and interaction
// logging.
type Handler struct {
	db        *database.DB
	processor *query.Processor
	discover  *discover.Engine
	assistant *assistant.Client
	session   *discordgo.Session
	botID     string
}

func NewHandler(db *database.DB, processor *query.Processor, disc *discover.Engine, ai *assistant.Client) *Handler {
	return &Handler{
		db:        db,
		processor: processor,
		discover:  disc,
		assistant: ai,
	}
}

func (h *Handler) SetSession(s *discordgo.Session) {
	h.session = s
	user, err := s.User("@me")
	if err != nil {
		log.Printf("Error getting bot user: %v", err)
		return
	}
	h.botID = user.ID

	s.AddHandler(h.handleInteraction)
}

// RegisterCommands registers the slash commands.
func (h *Handler) RegisterCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "search",
			Description: "Search messages, servers and channels",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "What to search for",
					Required:    true,
				},
			},
		},
		{
			Name:        "threads",
			Description: "Find conversation threads about a topic",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "topic",
					Description: "The topic to look for",
					Required:    true,
				},
			},
		},
		{
			Name:        "discover",
			Description: "Get community recommendations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "interests",
					Description: "What you're into",
					Required:    false,
				},
			},
		},
		{
			Name:        "health",
			Description: "Analyze channel health",
		},
		{
			Name:        "ask",
			Description: "Ask ROVER a question",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "The question to ask",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := h.session.ApplicationCommandCreate(h.session.State.User.ID, "", cmd); err != nil {
			return err
		}
	}

	log.Println("Slash commands registered successfully")
	return nil
}

func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.ID == h.botID || m.Author.Bot {
		return
	}

	if h.db != nil {
		go h.archiveMessage(m)
	}

	mentioned := strings.Contains(m.Content, "<@"+h.botID+">") || m.GuildID == "" // DM
	if !mentioned {
		return
	}

	input := strings.TrimSpace(strings.ReplaceAll(m.Content, "<@"+h.botID+">", ""))
	if input == "" {
		s.ChannelMessageSend(m.ChannelID, "Hi! Ask me to find messages, threads, channels or servers.")
		return
	}

	go h.handleQuery(s, m, input)
}

func (h *Handler) handleQuery(s *discordgo.Session, m *discordgo.MessageCreate, input string) {
	s.ChannelTyping(m.ChannelID)

	ctx := h.ambientContext(s, m.GuildID, m.ChannelID)

	if strings.HasPrefix(strings.ToLower(input), "ask ") {
		h.handleAsk(s, m, strings.TrimSpace(input[4:]), ctx)
		return
	}

	resp := h.processor.Process(input, ctx)
	reply := RenderResponse(resp)
	s.ChannelMessageSend(m.ChannelID, reply)

	h.logInteraction(m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, string(respIntent(resp)), input, reply)
}

// handleAsk forwards a free question to the assistant backend, streaming
// the reply into a single placeholder message as chunks arrive.
func (h *Handler) handleAsk(s *discordgo.Session, m *discordgo.MessageCreate, question string, ambient query.Context) {
	placeholder, err := s.ChannelMessageSend(m.ChannelID, "thinking…")
	if err != nil {
		log.Printf("Error sending placeholder: %v", err)
		return
	}

	req := assistant.Request{
		RequestType: "chat",
		ChannelContext: assistant.ChannelContext{
			ChannelName: ambient.ChannelName,
			ServerName:  ambient.ServerName,
			ServerID:    m.GuildID,
			Messages:    h.assistantContext(m.GuildID, m.ChannelID, question),
		},
		ActionDetails: question,
	}

	var lastEdit time.Time
	final, err := h.assistant.StreamReply(context.Background(), req, func(cumulative string) {
		// Throttle edits; only the most recent cumulative text matters.
		if time.Since(lastEdit) < time.Second {
			return
		}
		lastEdit = time.Now()
		s.ChannelMessageEdit(m.ChannelID, placeholder.ID, cumulative)
	})
	if err != nil {
		log.Printf("Error from assistant: %v", err)
		s.ChannelMessageEdit(m.ChannelID, placeholder.ID, assistant.UserMessage(assistant.Categorize(err)))
		return
	}

	s.ChannelMessageEdit(m.ChannelID, placeholder.ID, final)
	h.logInteraction(m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, "ask", question, final)
}

// assistantContext combines recent channel history with archived messages
// semantically similar to the question, so the assistant sees relevant
// older conversation, not just the last few lines.
func (h *Handler) assistantContext(guildID, channelID, question string) []assistant.ContextMessage {
	msgs := h.recentContext(guildID, channelID)
	if h.db == nil {
		return msgs
	}

	embedding, err := h.assistant.Embed(context.Background(), question)
	if err != nil {
		log.Printf("Error embedding question: %v", err)
		return msgs
	}
	similar, err := h.db.SimilarArchivedMessages(embedding, guildID, 5)
	if err != nil {
		log.Printf("Error loading similar messages: %v", err)
		return msgs
	}

	seen := make(map[int]struct{}, len(msgs))
	for _, m := range msgs {
		seen[m.ID] = struct{}{}
	}
	for _, a := range similar {
		if _, ok := seen[int(a.ID)]; ok {
			continue
		}
		msgs = append(msgs, assistant.ContextMessage{
			ID:      int(a.ID),
			User:    a.Author,
			Content: a.Content,
			Time:    a.Timestamp.Format("3:04 PM"),
		})
	}
	return msgs
}

// recentContext builds the assistant's channel history from the archive
// when available.
func (h *Handler) recentContext(guildID, channelID string) []assistant.ContextMessage {
	if h.db == nil {
		return nil
	}
	archived, err := h.db.RecentArchivedMessages(guildID, channelID, 10)
	if err != nil {
		log.Printf("Error loading archived context: %v", err)
		return nil
	}
	msgs := make([]assistant.ContextMessage, 0, len(archived))
	for i := len(archived) - 1; i >= 0; i-- { // oldest first
		a := archived[i]
		msgs = append(msgs, assistant.ContextMessage{
			ID:      int(a.ID),
			User:    a.Author,
			Content: a.Content,
			Time:    a.Timestamp.Format("3:04 PM"),
		})
	}
	return msgs
}

func (h *Handler) archiveMessage(m *discordgo.MessageCreate) {
	if len(m.Content) < 10 {
		return // Skip empty or very short messages
	}

	channel, err := h.session.Channel(m.ChannelID)
	if err != nil {
		log.Printf("Error getting channel info: %v", err)
		return
	}
	guild, err := h.session.Guild(m.GuildID)
	if err != nil {
		log.Printf("Error getting guild info: %v", err)
		return
	}

	msg := &models.ArchivedMessage{
		MessageID:   m.ID,
		Content:     m.Content,
		AuthorID:    m.Author.ID,
		Author:      m.Author.Username,
		ChannelID:   m.ChannelID,
		ChannelName: channel.Name,
		GuildID:     m.GuildID,
		GuildName:   guild.Name,
		Timestamp:   m.Timestamp,
	}

	if embedding, err := h.assistant.Embed(context.Background(), m.Content); err != nil {
		log.Printf("Error generating embedding: %v", err)
	} else {
		msg.Embedding = pgvector.NewVector(embedding)
	}

	if err := h.db.ArchiveMessage(msg); err != nil {
		log.Printf("Error archiving message: %v", err)
	}
}

func (h *Handler) logInteraction(guildID, channelID, userID, username, intent, q, response string) {
	if h.db == nil {
		return
	}
	err := h.db.LogInteraction(&models.Interaction{
		UserID:    userID,
		Username:  username,
		Intent:    intent,
		Query:     q,
		Response:  response,
		ChannelID: channelID,
		GuildID:   guildID,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("Error logging interaction: %v", err)
	}
}

// ambientContext resolves the names of the guild and channel the query was
// typed in.
func (h *Handler) ambientContext(s *discordgo.Session, guildID, channelID string) query.Context {
	ctx := query.Context{}
	if ch, err := s.Channel(channelID); err == nil {
		ctx.ChannelName = ch.Name
	}
	if guildID != "" {
		if g, err := s.Guild(guildID); err == nil {
			ctx.ServerName = g.Name
		}
	}
	return ctx
}

func respIntent(resp query.Response) query.Intent {
	switch resp.Type {
	case "threads":
		return query.IntentFindThreads
	case "servers":
		return query.IntentFindServers
	case "channels":
		return query.IntentFindChannels
	case "navigation":
		return query.IntentNavigate
	}
	return query.IntentSearch
}
