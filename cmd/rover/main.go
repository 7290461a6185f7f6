// cmd/rover/main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	root := &cobra.Command{
		Use:   "rover",
		Short: "ROVER — chat search, thread detection and community discovery",
		Long: `ROVER indexes a chat corpus and answers natural-language queries
over it: message search, conversation threads, server and channel
lookup, and community recommendations. The bot subcommand runs the
whole thing as a live Discord bot.`,
		SilenceUsage: true,
	}

	root.AddCommand(newBotCmd(), newQueryCmd(), newDiscoverCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
