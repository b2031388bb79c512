package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"github.com/sigmundgranaas/petty/internal/config"
	"github.com/sigmundgranaas/petty/pkg/api"
)

func main() {
	app := &cli.Command{
		Name:      "petty",
		Usage:     "renders a JSON template bound to a data record into a paginated PDF",
		ArgsUsage: "TEMPLATE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load options from `FILE` (YAML)"},
			&cli.StringFlag{Name: "data", Usage: "JSON data `FILE` bound into the template"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output PDF `FILE`"},
			&cli.StringSliceFlag{Name: "resource-path", Usage: "directory to search for images"},
			&cli.StringSliceFlag{Name: "font-dir", Usage: "directory to search for font files"},
			&cli.BoolFlag{Name: "two-pass", Usage: "resolve forward page references before the final render"},
			&cli.IntFlag{Name: "workers", Usage: "worker pool size for batch conversion"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable verbose structured logging"},
		},
		Action: runRender,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "petty: %v\n", err)
		os.Exit(1)
	}
}

func runRender(_ context.Context, cmd *cli.Command) error {
	templatePath := cmd.Args().First()
	if templatePath == "" {
		return cli.Exit("a template file argument is required", 1)
	}

	opts := api.DefaultOptions()
	if cfgPath := cmd.String("config"); cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		opts = cfg.ToOptions()
	}
	opts.ResourcePaths = append(opts.ResourcePaths, cmd.StringSlice("resource-path")...)
	opts.FontDirectories = append(opts.FontDirectories, cmd.StringSlice("font-dir")...)
	if cmd.Bool("two-pass") {
		opts.TwoPass = true
	}
	if w := cmd.Int("workers"); w > 0 {
		opts.Workers = int(w)
	}
	if cmd.Bool("debug") {
		opts.Debug = true
	}

	data, err := loadDataRecord(cmd.String("data"))
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		ext := filepath.Ext(templatePath)
		outputPath = templatePath[:len(templatePath)-len(ext)] + ".pdf"
	}

	converter := api.NewWithOptions(opts)
	if err := converter.ConvertFile(templatePath, data, outputPath); err != nil {
		return fmt.Errorf("render %s: %w", templatePath, err)
	}
	if opts.Debug {
		fmt.Printf("rendered %s -> %s\n", templatePath, outputPath)
	}
	return nil
}

func loadDataRecord(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return record, nil
}
