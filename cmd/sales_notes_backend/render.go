package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [sales-note-id]",
	Short: "Render a sales note to PDF and print the stored path",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid sales note ID %q", args[0])
	}

	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	app, err := buildApplication(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	path, err := app.services.Document.RenderSalesNote(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
