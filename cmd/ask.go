package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/satyammistari/text2sql-ai/internal/executor"
	"github.com/satyammistari/text2sql-ai/internal/reporter"
)

var askCmd = &cobra.Command{
	Use:   "ask <request>",
	Short: "Translate one request into SQL and run it",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, db, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	turn, err := p.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	reporter.Info("Generated SQL: " + turn.SQL)

	switch turn.Result.Kind {
	case executor.KindStatus:
		reporter.Ok(turn.Result.Message)
	case executor.KindError:
		reporter.Err(turn.Result.Message)
	default:
		reporter.RenderResult(os.Stdout, turn.Result)
	}
	return nil
}
