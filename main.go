package main

import (
	"os"

	"github.com/satyammistari/text2sql-ai/cmd"
	"github.com/satyammistari/text2sql-ai/internal/reporter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		reporter.Err(err.Error())
		os.Exit(1)
	}
}
