package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store for external changes and reload",
	Long: `Watch the metadata store document and reload the in-memory index
whenever it changes on disk.

Useful when another tool (a sync client, a second terminal) rewrites the
store: the index is derived state and is rebuilt from the document.

Use --quiet to suppress reload notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress reload notifications")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: atomic saves replace the file
	// by rename, which retires the old inode.
	if err := watcher.Add(appLibrary.StoreDir()); err != nil {
		return fmt.Errorf("failed to watch store directory: %w", err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatInfo("Watching " + appLibrary.StoreDir()))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce so one atomic save (create + rename) reloads once.
	var debounce *time.Timer
	const debounceDelay = 500 * time.Millisecond
	pending := false

	doReload := func() {
		if !pending {
			return
		}
		pending = false

		if err := manager.Reload(); err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Reload failed: " + err.Error()))
			}
			log.Printf("reload error: %v", err)
			return
		}
		if !watchQuiet {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Store changed, reloaded %d asset(s)", len(manager.AllAssets()))))
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(appLibrary.StoreFile()) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			pending = true
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, doReload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
