package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the library interactively",
	Long: `Browse assets in an interactive table.

Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- enter : Open selected asset
- q     : Quit`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	assets := manager.AllAssets()
	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("The library is empty"))
		return nil
	}

	p := tea.NewProgram(newExploreModel(assets))
	result, err := p.Run()
	if err != nil {
		return err
	}

	m := result.(exploreModel)
	if m.openID == "" {
		return nil
	}
	asset, err := manager.GetAsset(m.openID)
	if err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Opening " + asset.Name))
	return OpenFile(appLibrary.Abs(asset.LibraryPath))
}

// --- TUI Model ---

var exploreBorder = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type exploreModel struct {
	table  table.Model
	assets []domain.Asset
	openID string
}

func newExploreModel(assets []domain.Asset) exploreModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Kind", Width: 9},
		{Title: "Category", Width: 14},
		{Title: "Size", Width: 10},
		{Title: "Tags", Width: 24},
	}

	rows := make([]table.Row, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, table.Row{
			a.Name,
			a.Kind.String(),
			a.Category,
			humanSize(a.SizeBytes),
			strings.Join(a.Tags, ", "),
		})
	}

	height := len(rows)
	if height > 15 {
		height = 15
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("5"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5"))
	t.SetStyles(styles)

	return exploreModel{table: t, assets: assets}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.assets) {
				m.openID = m.assets[cursor].ID
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m exploreModel) View() string {
	help := ui.FormatMuted("  j/k move · enter open · q quit")
	return exploreBorder.Render(m.table.View()) + "\n" + help + "\n"
}
