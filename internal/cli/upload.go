package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload animal photos",
	Long: `Upload one or more photos and print their URLs, ready to paste into
an animal definition.

Accepted formats: jpg, jpeg, png, webp. Maximum size 5 MB per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	ctx := cmd.Context()

	type uploaded struct {
		File string `json:"file"`
		URL  string `json:"url"`
	}
	var results []uploaded
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return &output.CLIError{
				Summary:  "could not open " + path,
				Detail:   err.Error(),
				ExitCode: output.ExitUsageError,
			}
		}
		url, err := client.Upload.Upload(ctx, filepath.Base(path), f)
		f.Close()
		if err != nil {
			return apiError("could not upload "+path, err)
		}
		results = append(results, uploaded{File: path, URL: url})
		if !jsonOut {
			printer.Success("%s -> %s", path, url)
		}
	}
	if jsonOut {
		return printJSON(results)
	}
	return nil
}
