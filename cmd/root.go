// Package cmd holds the CLI surface. The commands resolve configuration,
// open the connection and hand the pipeline its collaborators; the
// pipeline itself stays host-agnostic.
package cmd

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/satyammistari/text2sql-ai/internal/config"
	"github.com/satyammistari/text2sql-ai/internal/database"
	"github.com/satyammistari/text2sql-ai/internal/generator"
	"github.com/satyammistari/text2sql-ai/internal/pipeline"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "text2sql",
	Short:        "Translate natural language into executable SQL",
	Long:         "text2sql grounds a natural-language request in the live database schema,\ngenerates SQL through a hosted model, dry-run validates it and executes it.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().String("db", "", "Database connection string (sqlite:path or postgres://...)")
	rootCmd.PersistentFlags().String("model", "", "Completion model identifier")
	rootCmd.PersistentFlags().Bool("read-only", false, "Refuse write statements")
}

// loadConfig resolves file config plus flag overrides for any subcommand.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Database.Conn = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.API.Model = v
	}
	if v, _ := cmd.Flags().GetBool("read-only"); v {
		cfg.Query.ReadOnly = true
	}
	if cfg.Database.Conn == "" {
		return cfg, fmt.Errorf("no database configured: set database.conn or pass --db")
	}
	return cfg, nil
}

// openPipeline opens the process-lifetime connection and builds the
// pipeline around it. The caller closes the returned handle on shutdown.
func openPipeline(cfg config.Config) (*pipeline.Pipeline, *sql.DB, error) {
	db, driver, err := database.Open(cfg.Database.Conn)
	if err != nil {
		return nil, nil, err
	}
	gen := generator.NewClient(generator.Config{
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
		Model:   cfg.API.Model,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})
	p := pipeline.New(db, driver, gen, pipeline.Config{
		ReadOnly:       cfg.Query.ReadOnly,
		MaxSchemaBytes: cfg.Query.MaxSchemaBytes,
	})
	return p, db, nil
}
