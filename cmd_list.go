package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noborus/ov/oviewer"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gitjump/internal/domain"
	"gitjump/internal/logging"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List discovered repositories",
	Long:  "List every repository the picker would offer, one per line as name and path.\nOutput is paged when stdout is a terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		startLogging(cfg)
		defer logging.Close()

		bus := newBus()
		defer bus.Close()

		items, err := discover(cfg, bus)
		if err != nil {
			return err
		}

		out := formatList(items)
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		}
		return page(out)
	},
}

// formatList renders items as tab separated name and path lines
func formatList(items []domain.Item) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s\t%s\n", item.Name, item.Path)
	}
	return b.String()
}

// page shows content in the ov pager
func page(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
