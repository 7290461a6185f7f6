// cmd/rover/discover.go
package main

import (
	"fmt"
	"strings"

	"discord-rover/internal/bot"

	"github.com/spf13/cobra"
)

func newDiscoverCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "discover [interests]",
		Short: "Recommend communities from the discovery catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStack()
			if err != nil {
				return err
			}

			recs := st.discover.DiscoveryRecommendations(strings.Join(args, " "))
			if limit > 0 && len(recs) > limit {
				recs = recs[:limit]
			}

			fmt.Fprintln(cmd.OutOrStdout(), bot.RenderRecommendations(recs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of recommendations")
	return cmd
}
