// nsgen generates entity registrations and row types from a YAML
// entity description.
//
// Usage:
//
//	nsgen --in entities.yaml --out ./entity --pkg entity
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inhq/netsuite/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		in  string
		out string
		pkg string
	)
	cmd := &cobra.Command{
		Use:           "nsgen",
		Short:         "generate NetSuite entity registrations from a YAML description",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := gen.Load(in)
			if err != nil {
				return err
			}
			cfg, err := gen.NewConfig(gen.WithPackage(pkg), gen.WithTarget(out))
			if err != nil {
				return err
			}
			if err := gen.Generate(spec, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d entities in %s\n", len(spec.Entities), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "entities.yaml", "path to the YAML entity description")
	cmd.Flags().StringVar(&out, "out", ".", "output directory for generated files")
	cmd.Flags().StringVar(&pkg, "pkg", "entity", "package name of the generated files")
	return cmd
}
