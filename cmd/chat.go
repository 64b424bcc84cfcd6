package cmd

import (
	"github.com/spf13/cobra"

	"github.com/satyammistari/text2sql-ai/internal/database"
	"github.com/satyammistari/text2sql-ai/internal/reporter"
	"github.com/satyammistari/text2sql-ai/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat UI",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, db, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Watch the backing file so the user learns when another process
	// changed the database. Server-backed databases have no file to watch.
	watchPath := database.FilePath(cfg.Database.Conn)
	if watchPath == "" {
		reporter.Warn("server-backed database: file change notices disabled")
	}

	return tui.Run(tui.Options{
		Pipeline:  p,
		Model:     cfg.API.Model,
		WatchPath: watchPath,
	})
}
