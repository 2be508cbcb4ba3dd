package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/textextract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a structured profile from a PDF or DOCX resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := extract(cmd, args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("user", "u", "", "attach the extracted profile to this user in the profile store")
	extractCmd.Flags().String("format", "", "document format (pdf or docx). Default is derived from the file extension")
}

func extract(cmd *cobra.Command, path string) error {
	d, err := setup()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	userID, _ := cmd.Flags().GetString("user")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = textextract.FormatFromFilename(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}

	p, err := d.assembler.ExtractProfile(data, format)
	if err != nil {
		return err
	}

	if userID != "" {
		if _, err := d.store.AttachResume(userID, p); err != nil {
			return fmt.Errorf("attaching resume to %q: %w", userID, err)
		}
		d.logger.Debug("resume attached from cli", zap.String("file", path))
	}

	return printJSON(cmd.OutOrStdout(), p)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
