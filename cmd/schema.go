package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the schema text handed to the model",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, db, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	text, err := p.Schema(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
