// cmd/rover/bot.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"discord-rover/internal/assistant"
	"discord-rover/internal/bot"
	"discord-rover/internal/database"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the live Discord bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	st, err := buildStack()
	if err != nil {
		return err
	}

	// The archive is optional: without DB_HOST the bot still searches and
	// discovers, it just skips archiving and assistant context enrichment.
	var db *database.DB
	if os.Getenv("DB_HOST") != "" {
		db, err = database.NewDB(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			5432,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	} else {
		log.Println("DB_HOST not set, running without the message archive")
	}

	aiClient := assistant.NewClient(os.Getenv("OPENAI_API_KEY"))

	handler := bot.NewHandler(db, st.processor, st.discover, aiClient)

	discord, err := discordgo.New("Bot " + os.Getenv("DISCORD_TOKEN"))
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	handler.SetSession(discord)
	discord.AddHandler(handler.OnMessageCreate)

	discord.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	if err := discord.Open(); err != nil {
		log.Fatalf("Error opening Discord connection: %v", err)
	}
	defer discord.Close()

	if err := handler.RegisterCommands(); err != nil {
		log.Printf("Error registering slash commands: %v", err)
	}

	log.Println("🔎 ROVER is running!")
	log.Println("Commands:")
	log.Println("  /search <query> - Search messages, servers and channels")
	log.Println("  /threads <topic> - Find conversation threads")
	log.Println("  /discover [interests] - Community recommendations")
	log.Println("  /health - Channel health analysis")
	log.Println("  /ask <question> - Ask the assistant")
	log.Println("  @bot <message> - Natural-language queries in chat")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down ROVER...")
	return nil
}
