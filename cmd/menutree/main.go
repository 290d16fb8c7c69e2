package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dishdecider/backend/internal/domain"
	"github.com/dishdecider/backend/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "menutree",
		Short:         "Inspect menu category trees offline",
		Long:          `menutree builds the category tree and category map for a menu file and shows which selection paths the quiz would resolve to dishes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd(), newPathsCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var input string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the full map for a menu file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			items, err := readMenu(r)
			if err != nil {
				return err
			}

			tree, categoryMap := usecase.BuildTree(items)
			out := map[string]*domain.FullMap{
				"fullMap": {Categories: tree, CategoryMap: categoryMap},
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "menu JSON file (default stdin)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent output")
	return cmd
}

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths PATH...",
		Short: "Print the terminal paths kept from slash-joined selection paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, malformed := usecase.DecodePaths(args, usecase.PathDelimiter)
			for _, m := range malformed {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping malformed path %q\n", m)
			}
			terminal, err := usecase.EncodePaths(usecase.ResolveTerminalPaths(paths), usecase.PathDelimiter)
			if err != nil {
				return err
			}
			for _, p := range terminal {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

// readMenu accepts either a bare array of items or {"queryMenu": [...]}
func readMenu(r io.Reader) ([]domain.MenuItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty menu input", domain.ErrInvalidInput)
	}

	if data[0] == '[' {
		var items []domain.MenuItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return items, nil
	}

	var wrapped struct {
		QueryMenu []domain.MenuItem `json:"queryMenu"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if wrapped.QueryMenu == nil {
		return nil, fmt.Errorf("%w: missing queryMenu", domain.ErrInvalidInput)
	}
	return wrapped.QueryMenu, nil
}
