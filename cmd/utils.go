package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/cura-cli/cura/internal/core/domain"
)

// shortID returns the first id segment, enough to be unique in practice and
// short enough for table columns. Full ids are always accepted as input.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// humanSize formats a byte count for table output
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// resolveAsset accepts a full id, a short id prefix, or a name keyword and
// returns the matching asset. Ambiguous input is an error rather than a
// guess.
func resolveAsset(query string) (domain.Asset, error) {
	if asset, err := manager.GetAsset(query); err == nil {
		return asset, nil
	}

	var matches []domain.Asset
	for _, a := range manager.AllAssets() {
		if strings.HasPrefix(a.ID, query) {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		matches = manager.SearchAssets(query)
	}

	switch len(matches) {
	case 0:
		return domain.Asset{}, fmt.Errorf("no asset matches %q", query)
	case 1:
		return matches[0], nil
	default:
		return pickAsset(matches)
	}
}

// pickAsset opens a fuzzy finder over the given assets
func pickAsset(assets []domain.Asset) (domain.Asset, error) {
	idx, err := fuzzyfinder.Find(
		assets,
		func(i int) string {
			a := assets[i]
			return fmt.Sprintf("%s  %s  [%s]", a.Name, a.Description, a.Category)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			a := assets[i]
			var s strings.Builder
			s.WriteString(fmt.Sprintf("Name:     %s\n", a.Name))
			s.WriteString(fmt.Sprintf("Category: %s\n", a.Category))
			s.WriteString(fmt.Sprintf("Kind:     %s\n", a.Kind))
			s.WriteString(fmt.Sprintf("Size:     %s\n", humanSize(a.SizeBytes)))
			s.WriteString(fmt.Sprintf("Path:     %s\n", a.LibraryPath))
			if len(a.Tags) > 0 {
				s.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(a.Tags, ", ")))
			}
			if a.Description != "" {
				s.WriteString("\n" + a.Description + "\n")
			}
			return s.String()
		}),
	)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("selection cancelled")
	}
	return assets[idx], nil
}

// OpenFile opens a path with the OS default application.
func OpenFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start() detaches so cura can exit while the viewer stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	return nil
}
