package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a session's network to the starting state",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := cmd.Flags().GetString("session")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := network.NewService(st.SnapshotRepo(), st.EventRepo(), nil, snapshotsKept)
		if _, err := svc.Reset(context.Background(), session); err != nil {
			return fmt.Errorf("reset session %q: %w", session, err)
		}

		fmt.Printf("Session %q reset to the starting network.\n", session)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("session", "s", "global", "Session key to reset")
}
