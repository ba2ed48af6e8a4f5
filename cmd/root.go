package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ayaanshkk/switchboard/internal/api"
	"github.com/ayaanshkk/switchboard/internal/board"
	"github.com/ayaanshkk/switchboard/internal/config"
	"github.com/ayaanshkk/switchboard/internal/journal"
	"github.com/ayaanshkk/switchboard/internal/logging"
	pipelineservice "github.com/ayaanshkk/switchboard/internal/services/pipeline"
	"github.com/ayaanshkk/switchboard/internal/tui"
	"github.com/ayaanshkk/switchboard/internal/user"
)

var backendURL string

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "Switchboard - a terminal kanban board for CRM pipelines",
	Long: `Switchboard is a terminal kanban board for the sales and training
pipelines of a CRM backend. Stage moves apply instantly on the board
and sync to the backend in the background; if the sync fails, the
move is reverted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "",
		"backend base URL (overrides the config file)")
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runBoard() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	identity := user.Identity(cfg.Identity.UpdatedBy)
	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout())
	svc := pipelineservice.NewService(client, identity)

	// The journal is best-effort: a board without an audit trail is
	// still a working board.
	var recorder board.Recorder
	if path, err := journal.DefaultPath(); err == nil {
		if j, err := journal.Open(path, identity); err == nil {
			defer j.Close()
			recorder = j
		}
	}

	engine := board.NewEngine(svc, recorder)
	model := tui.InitialModel(context.Background(), svc, engine, cfg.Theme)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
