package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/mockgen"
)

func main() {
	var (
		seed      int64
		employees int
		weeks     int
		out       string
	)

	rootCmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate a mock burnout dataset and write it as JSON",
		Long: `Generate a mock employee burnout dataset: a roster with hidden burnout
profiles plus correlated weekly work logs, messages and self-assessments.
The same seed and parameters always produce the same dataset.`,
		Example: `  datagen --seed 7 --employees 25 --out dataset.json
  datagen --employees 50 --weeks 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := mockgen.NewWithOptions(seed, mockgen.Options{Weeks: weeks})
			ds, err := gen.Generate(employees)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(ds); err != nil {
				return fmt.Errorf("failed to encode dataset: %w", err)
			}

			if out != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d employees, %d weeks of history to %s\n",
					len(ds.Employees), weeks, out)
			}
			return nil
		},
	}

	rootCmd.Flags().Int64Var(&seed, "seed", 42, "random seed; identical seeds reproduce identical datasets")
	rootCmd.Flags().IntVar(&employees, "employees", 12, "number of employees to generate")
	rootCmd.Flags().IntVar(&weeks, "weeks", 12, "weeks of trailing history per employee")
	rootCmd.Flags().StringVar(&out, "out", "-", "output file, or - for stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
