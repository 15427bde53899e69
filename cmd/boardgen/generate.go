package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/config"
	"github.com/wippyai/boardgen/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <board.toml>",
		Short: "Run the selected backends and write their output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.generate(cmd, args[0])
			if err != nil {
				return err
			}

			paths := generator.Paths(results)
			if dryRun {
				for _, p := range paths {
					PrintInfoMessage("Plan", p)
				}
				return nil
			}

			root := a.cfg.Output.Root
			if err := generator.Write(root, results); err != nil {
				return err
			}
			PrintSuccessMessage("Done", fmt.Sprintf("%d artifacts written to %s", len(paths), root))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", ".", "output root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the artifacts without writing them")
	a.bind(config.KeyOutputRoot, cmd.Flags().Lookup("output"))
	return cmd
}

// generate loads the board at path and runs the configured backends.
func (a *app) generate(cmd *cobra.Command, path string) ([]*backend.Result, error) {
	b, err := board.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("board loaded",
		zap.String("file", path),
		zap.Int("cores", len(b.Cores)),
		zap.Int("instances", len(b.Instances)),
		zap.Int("gpios", len(b.GPIOs)))

	return generator.Generate(cmd.Context(), b, a.cfg.Selected()...)
}
