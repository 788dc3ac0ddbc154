package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signalpro/internal/app"
)

var (
	generateInput string
	generateOut   string
	generatePNG   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a signal page from a JSON request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(generateInput)
		if err != nil {
			return fmt.Errorf("read input %s: %w", generateInput, err)
		}

		var req app.GenerateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("parse input %s: %w", generateInput, err)
		}

		res, err := getApp().Generate(app.GenerateOptions{
			Request:  req,
			Filename: generateOut,
			PNGPath:  generatePNG,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", res.File.Path, res.File.Bytes)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateInput, "input", "", "Path to JSON request file")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output filename (default <TICKER>_<kind>.html)")
	generateCmd.Flags().StringVar(&generatePNG, "png", "", "Also export the trajectory chart as a PNG to this path")
	_ = generateCmd.MarkFlagRequired("input")
}
