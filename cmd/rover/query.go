// cmd/rover/query.go
package main

import (
	"fmt"
	"strings"

	"discord-rover/internal/bot"
	"discord-rover/internal/query"

	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	var serverName, channelName string

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Run a natural-language query against the corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStack()
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			resp := st.processor.Process(input, query.Context{
				ServerName:  serverName,
				ChannelName: channelName,
			})

			fmt.Fprintln(cmd.OutOrStdout(), bot.RenderResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverName, "server", "", "ambient server name for context defaults")
	cmd.Flags().StringVar(&channelName, "channel", "", "ambient channel name for context defaults")
	return cmd
}
