package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/QuantumsKid/stat-q/internal/batch"
	"github.com/QuantumsKid/stat-q/internal/docxfile"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert Word questionnaires to plain text files",
	Long: `Extract converts every .docx file directly under the source directory
into a .txt file in the destination directory. Non-empty paragraphs are
written line per line; table rows are flattened into " | "-delimited lines.

Files that cannot be parsed are reported and skipped; the batch always
runs to completion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcDir, err := resolveDir(cmd, "source-dir", "source_directory")
		if err != nil {
			return err
		}
		dstDir, err := resolveDir(cmd, "dest-dir", "destination_directory")
		if err != nil {
			return err
		}

		result, err := batch.Run(docxfile.GoDocxOpener{}, srcDir, dstDir, os.Stdout)
		if err != nil {
			return err
		}

		report, _ := cmd.Flags().GetString("report")
		if report == "" {
			report = viper.GetString("report_file")
		}
		if report != "" {
			if err := batch.WriteReportFile(report, srcDir, dstDir, result); err != nil {
				return err
			}
		}
		return nil
	},
}

// resolveDir returns the directory for flag, falling back to the viper key.
// An empty result is a configuration error.
func resolveDir(cmd *cobra.Command, flag, key string) (string, error) {
	dir, _ := cmd.Flags().GetString(flag)
	if dir == "" {
		dir = viper.GetString(key)
	}
	if dir == "" {
		return "", fmt.Errorf("no %s configured: set --%s or %s in the config file", flag, flag, key)
	}
	return dir, nil
}

func init() {
	extractCmd.Flags().String("source-dir", "", "directory containing .docx questionnaires (overrides source_directory)")
	extractCmd.Flags().String("dest-dir", "", "directory for extracted .txt files (overrides destination_directory)")
	extractCmd.Flags().String("report", "", "write a YAML run report to this path (overrides report_file)")

	rootCmd.AddCommand(extractCmd)
}
