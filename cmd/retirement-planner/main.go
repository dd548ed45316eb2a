package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantdash/retirement-planner/internal/api"
	"github.com/quantdash/retirement-planner/internal/calculation"
	"github.com/quantdash/retirement-planner/internal/config"
	"github.com/quantdash/retirement-planner/internal/output"
	"github.com/quantdash/retirement-planner/internal/store"
	"github.com/quantdash/retirement-planner/internal/store/sqlite"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "retirement-planner",
		Short: "Two-phase retirement plan calculator",
		Long: `Computes the investment fraction of salary needed to fund a retirement
income goal, simulates the year-by-year capital trajectory through the
accumulation and distribution phases, and reports the age at which capital
runs out, if it does.`,
		SilenceUsage: true,
	}
	root.AddCommand(newCalculateCmd(), newExampleCmd(), newServeCmd())
	return root
}

func newCalculateCmd() *cobra.Command {
	var (
		inputFile string
		format    string
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run every scenario in a configuration file and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewPlanEngine()
			if debug {
				engine.SetLogger(calculation.WriterLogger{W: cmd.ErrOrStderr()})
			}
			results, err := engine.RunScenarios(cfg)
			if err != nil {
				return err
			}

			// Console output goes to stdout directly; file formats are written
			// to timestamped report files.
			name := output.NormalizeFormatName(format)
			if name == "console" {
				f := output.GetFormatterByName(name)
				data, err := f.Format(results)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return output.GenerateReport(results, name)
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "scenarios.yaml", "scenario configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, detailed-csv, json, html, pdf, all)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log engine internals to stderr")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example scenario configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenarios.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example configuration to %s\n", path)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan engine and scenario store over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarioStore store.ScenarioStore
			if dbPath != "" {
				s, err := sqlite.New(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				scenarioStore = s
			} else {
				scenarioStore = store.NewMemoryStore()
			}

			handler := api.NewHandler(calculation.NewPlanEngine(), scenarioStore)
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return http.ListenAndServe(addr, api.NewRouter(handler))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path (in-memory scenarios when empty)")
	return cmd
}
