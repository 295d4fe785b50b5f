package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rota-go/pkg/rota"
	"github.com/ukaji3/rota-go/pkg/rota/models"
	"github.com/ukaji3/rota-go/pkg/rota/output"
)

type processFlags struct {
	outputPath string
	pretty     bool
	format     string
	daysDir    string
}

func newProcessCmd(global *globalFlags) *cobra.Command {
	flags := &processFlags{}

	cmd := &cobra.Command{
		Use:   "process [input.xlsx]",
		Short: "Allocate teams for every weekday of a rota workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, global, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&flags.format, "format", "json", "Output format: json, text")
	cmd.Flags().StringVar(&flags.daysDir, "days-dir", "", "Directory for per-day JSON files")
	return cmd
}

func runProcess(cmd *cobra.Command, global *globalFlags, flags *processFlags, inputPath string) error {
	if flags.format != "json" && flags.format != "text" {
		return fmt.Errorf("invalid format: %s (must be json or text)", flags.format)
	}

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, log, err := global.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	processor, err := rota.NewProcessor(cfg.Rota, log)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read workbook: %w", err)
	}
	report, err := processor.Process(data)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	log.Infow("rota processed", "input", inputPath, "days", len(report))

	var rendered []byte
	if flags.format == "text" {
		rendered, err = renderText(report, cfg.Rota)
	} else {
		rendered, err = output.ToJSON(report, flags.pretty)
		rendered = append(rendered, '\n')
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, rendered, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if flags.daysDir == "" {
		if _, err := cmd.OutOrStdout().Write(rendered); err != nil {
			return err
		}
	}

	// Write per-day files
	if flags.daysDir != "" {
		if err := writeDayFiles(report, cfg.Rota.Weekdays, flags.daysDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write day files: %w", err)
		}
	}

	return nil
}

func renderText(report models.Report, cfg rota.Config) ([]byte, error) {
	teams := make([]string, 0, len(cfg.Rules.Teams))
	for _, t := range cfg.Rules.Teams {
		teams = append(teams, t.Name)
	}

	var buf bytes.Buffer
	if err := output.WriteText(&buf, report, cfg.Weekdays, teams); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeDayFiles writes one JSON file per weekday, in weekday order.
func writeDayFiles(report models.Report, weekdays []string, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, day := range weekdays {
		assignment, ok := report[day]
		if !ok {
			continue
		}
		jsonData, err := output.DayToJSON(assignment, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, day+".json")
		if err := os.WriteFile(filename, jsonData, 0o644); err != nil {
			return err
		}
	}

	return nil
}
