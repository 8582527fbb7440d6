package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/ribgsilva/notebook-api/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func main() {
	// the commands print their own output, the logger only reports config fallbacks
	log := zap.NewNop().Sugar()
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "notebook",
		Short:         "Notebook API admin commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log))

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
