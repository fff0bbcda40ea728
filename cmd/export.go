package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var (
	exportFormat string
	exportOutput string
)

// exportDocument is the catalogue snapshot handed to other tools.
type exportDocument struct {
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Library    string         `json:"library" yaml:"library"`
	Categories []string       `json:"categories" yaml:"categories"`
	Assets     []domain.Asset `json:"assets" yaml:"assets"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalogue as YAML or JSON",
	Long: `Dump the full catalogue (metadata only, not content) to stdout or
a file, for scripting or backup.

Examples:
  cura export
  cura export --format json --output catalogue.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format (yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := exportDocument{
		ExportedAt: time.Now(),
		Library:    manager.LibraryPath(),
		Categories: manager.Categories(),
		Assets:     manager.AllAssets(),
	}

	var data []byte
	var err error
	switch exportFormat {
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Exported catalogue to " + exportOutput))
	return nil
}
