package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var statsChart bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	Long: `Summarize the library: asset counts and total content size per
category.

Use --chart to render the distribution as an HTML bar chart and open it in
the browser.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "Render an HTML chart")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	assets := manager.AllAssets()
	categories := manager.Categories()

	counts := make(map[string]int)
	sizes := make(map[string]int64)
	var totalSize int64
	for _, a := range assets {
		counts[a.Category]++
		sizes[a.Category] += a.SizeBytes
		totalSize += a.SizeBytes
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle("Library Statistics"))
	fmt.Println()
	fmt.Printf("  %s %d\n", ui.FormatBold("Assets:"), len(assets))
	fmt.Printf("  %s %d\n", ui.FormatBold("Categories:"), len(categories))
	fmt.Printf("  %s %s\n", ui.FormatBold("Total size:"), humanSize(totalSize))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "CATEGORY", Width: 14},
		{Header: "ASSETS", Right: true},
		{Header: "SIZE", Right: true},
	})
	for _, c := range categories {
		table.AddRow([]string{c, fmt.Sprintf("%d", counts[c]), humanSize(sizes[c])})
	}
	fmt.Print(table.Render())

	if !statsChart {
		return nil
	}
	return renderStatsChart(categories, counts, sizes)
}

// renderStatsChart writes the distribution as an HTML bar chart under the
// library's reserved directory and opens it.
func renderStatsChart(categories []string, counts map[string]int, sizes map[string]int64) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Asset Library",
			Subtitle: "Assets per category",
		}),
	)

	var countData []opts.BarData
	var sizeData []opts.BarData
	for _, c := range categories {
		countData = append(countData, opts.BarData{Value: counts[c]})
		sizeData = append(sizeData, opts.BarData{Value: sizes[c] / 1024})
	}

	bar.SetXAxis(categories).
		AddSeries("Assets", countData).
		AddSeries("Size (KiB)", sizeData)

	chartPath := filepath.Join(appLibrary.StoreDir(), "stats.html")
	f, err := os.Create(chartPath)
	if err != nil {
		return err
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println(ui.FormatInfo("Opening chart..."))
	return OpenFile(chartPath)
}
