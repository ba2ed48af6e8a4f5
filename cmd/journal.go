package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayaanshkk/switchboard/internal/journal"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent committed stage moves",
	Long:  `Prints the most recent stage transitions this machine has committed, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := journal.DefaultPath()
		if err != nil {
			return err
		}
		j, err := journal.Open(path, "")
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		entries, err := j.Recent(context.Background(), journalLimit)
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No recorded stage moves.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-9s %-12s %s -> %s (%s)\n",
				e.MovedAt.Format("2006-01-02 15:04"),
				e.Pipeline, e.ItemID, e.FromStage, e.ToStage, e.MovedBy)
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().IntVar(&journalLimit, "limit", 20, "maximum entries to show")
}
