package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mmrzaf/tabgen/internal/app"
	"github.com/mmrzaf/tabgen/internal/config"
	"github.com/mmrzaf/tabgen/internal/domain"
	"github.com/mmrzaf/tabgen/internal/logging"
	"github.com/mmrzaf/tabgen/internal/registry"
	"github.com/mmrzaf/tabgen/internal/specfile"
	"github.com/mmrzaf/tabgen/internal/writers"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var logLevel string

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "tabgen",
		Short: "Synthetic tabular dataset generator",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(typesCmd())
	rootCmd.AddCommand(formatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService() *app.GenerationService {
	return app.NewGenerationService(
		registry.DefaultGeneratorRegistry(),
		writers.DefaultWriterRegistry(),
		logging.NewLogger(logLevel),
	)
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		specPath     string
		format       string
		rows         int
		output       string
		columns      []string
		seed         int64
		batchSize    int
		validateOnly bool
		noProgress   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req *domain.Request
			var err error

			if specPath != "" {
				req, err = specfile.Load(specPath)
				if err != nil {
					return err
				}
			} else {
				req, err = buildRequest(format, rows, output, columns, batchSize)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			if cmd.Flags().Changed("batch-size") {
				req.BatchSize = batchSize
			}

			service := newService()

			if issues := service.ValidateConfig(req.Config); len(issues) > 0 {
				color.Red("Configuration has %d problem(s):", len(issues))
				for _, issue := range issues {
					fmt.Fprintf(os.Stderr, "  - %s\n", issue)
				}
				return fmt.Errorf("invalid configuration")
			}

			if validateOnly {
				color.Green("Configuration is valid")
				return nil
			}

			if !noProgress {
				bar := progressbar.Default(int64(req.Config.RowCount), "generating")
				service.Progress = func(done, total int) {
					_ = bar.Set(done)
				}
			}

			path, err := service.Generate(req)
			if err != nil {
				color.Red("Generation failed: %v", err)
				return err
			}

			color.Green("Generated %d rows -> %s", req.Config.RowCount, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Request spec file (yaml or json)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output file format")
	cmd.Flags().IntVarP(&rows, "rows", "r", 100, "Number of rows to generate")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.Flags().StringArrayVarP(&columns, "column", "c", nil,
		"Column spec: name:type, name:integer:min:max, name:float:min:max or name:text:length (repeatable)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")
	cmd.Flags().IntVar(&batchSize, "batch-size", cfg.BatchSize, "Rows per generation batch")
	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Validate the configuration without generating")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

func validateCmd() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a request spec file",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := specfile.Load(specPath)
			if err != nil {
				color.Red("%v", err)
				return err
			}

			service := newService()
			issues := service.ValidateConfig(req.Config)
			if len(issues) == 0 {
				color.Green("Configuration is valid")
				return nil
			}

			color.Red("Configuration has %d problem(s):", len(issues))
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, "  - %s\n", issue)
			}
			return fmt.Errorf("invalid configuration")
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Request spec file (yaml or json)")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List available column data types",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE")
			for _, t := range service.AvailableTypes() {
				fmt.Fprintf(w, "%s\n", t)
			}
			return w.Flush()
		},
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT")
			for _, f := range service.AvailableFormats() {
				fmt.Fprintf(w, "%s\n", f)
			}
			return w.Flush()
		},
	}
}

func buildRequest(format string, rows int, output string, columns []string, batchSize int) (*domain.Request, error) {
	if output == "" {
		return nil, fmt.Errorf("--output is required when no --spec file is given")
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("at least one --column is required when no --spec file is given")
	}

	specs := make([]domain.ColumnSpec, 0, len(columns))
	for _, raw := range columns {
		col, err := parseColumn(raw)
		if err != nil {
			return nil, err
		}
		specs = append(specs, col)
	}

	fileSpec, err := domain.NewFileSpec(domain.Format(format), rows, len(specs), specs, output)
	if err != nil {
		return nil, err
	}
	return domain.NewRequest(fileSpec, nil, batchSize)
}

// parseColumn decodes one --column flag value. Grammar:
//
//	name:type
//	name:integer:min:max   name:float:min:max
//	name:text:length
func parseColumn(raw string) (domain.ColumnSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return domain.ColumnSpec{}, fmt.Errorf("invalid column spec %q: want name:type", raw)
	}

	col := domain.ColumnSpec{
		Name: parts[0],
		Type: domain.DataType(parts[1]),
	}

	switch {
	case col.Type.IsNumeric() && len(parts) == 4:
		min, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return domain.ColumnSpec{}, fmt.Errorf("invalid min in column spec %q: %w", raw, err)
		}
		max, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return domain.ColumnSpec{}, fmt.Errorf("invalid max in column spec %q: %w", raw, err)
		}
		col.MinValue = &min
		col.MaxValue = &max
	case col.Type == domain.DataTypeText && len(parts) == 3:
		length, err := strconv.Atoi(parts[2])
		if err != nil {
			return domain.ColumnSpec{}, fmt.Errorf("invalid length in column spec %q: %w", raw, err)
		}
		col.TextLength = &length
	case len(parts) == 2:
	default:
		return domain.ColumnSpec{}, fmt.Errorf("invalid column spec %q for type %s", raw, col.Type)
	}

	return col, nil
}
