package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/tierview/internal/collector"
	"github.com/ThomasCrouzet/tierview/internal/config"
	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
	"github.com/ThomasCrouzet/tierview/internal/render"
	"github.com/ThomasCrouzet/tierview/internal/ui"
)

var (
	outputFile  string
	format      string
	detailLevel string
	direction   string
	autoRender  bool
	imageFormat string
	themeName   string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Build one snapshot and export it",
	Long: `Discover the 3-tier topology once and write it as a D2 diagram, JSON,
YAML or a standalone HTML page. Use -o - to write to stdout.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path, - for stdout")
	snapshotCmd.Flags().StringVar(&format, "format", "", "export format: "+strings.Join(render.Formats(), ", "))
	snapshotCmd.Flags().StringVar(&detailLevel, "detail", "", "detail level: minimal, standard, detailed")
	snapshotCmd.Flags().StringVar(&direction, "direction", "", "diagram direction: up, down, left, right")
	snapshotCmd.Flags().BoolVar(&autoRender, "render", false, "auto-render the D2 output to SVG/PNG (requires d2)")
	snapshotCmd.Flags().StringVar(&imageFormat, "image-format", "", "image format for --render: svg, png (default: svg)")
	snapshotCmd.Flags().StringVar(&themeName, "theme", "", "color theme: "+strings.Join(render.ThemeNames(), ", "))
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, restore, err := setup()
	if err != nil {
		return err
	}
	defer restore()

	applySnapshotOverrides(cfg)

	renderer, err := render.ForFormat(cfg.Render.Format, render.Options{
		Direction:   cfg.Render.Direction,
		Theme:       cfg.Render.Theme,
		DetailLevel: cfg.Render.DetailLevel,
	})
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Unsupported format", err.Error(), "use one of: "+strings.Join(render.Formats(), ", ")))
		return err
	}

	toStdout := cfg.Render.Output == "-"
	if toStdout {
		// keep stdout clean for the document
		ui.Out = os.Stderr
	}

	src := inventory.NewSource(cfg.InventoryOptions())
	fmt.Fprintln(ui.Out, ui.Bold("Collecting resources from "+src.Label()+"..."))

	snap, results := collector.Collect(cmd.Context(), src, collectorOptions(cfg, src))
	for _, r := range results {
		if r.Err != nil {
			ui.SourceFailed(r.Name, r.Err)
		} else {
			ui.SourceDone(r.Name, r.Detail)
		}
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, snap); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render snapshot", err.Error(), ""))
		return err
	}

	if toStdout {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	output := outputPath(cfg.Render.Output, cfg.Render.Format)
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%s)", output, summary(snap)))
	if snap.Degraded() {
		ui.Warn(fmt.Sprintf("%d resource kinds could not be queried and are shown as empty", len(snap.UnavailableSources())))
	}

	// Auto-render if requested
	if cfg.Render.AutoRender {
		if cfg.Render.Format != "d2" {
			ui.Warn("--render only applies to the d2 format, skipping")
		} else if err := autoRenderD2(output, cfg.Render.ImageFormat); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Auto-render failed", err.Error(), "install d2: https://d2lang.com/tour/install"))
		}
	}

	return nil
}

func applySnapshotOverrides(cfg *config.Config) {
	if outputFile != "" {
		cfg.Render.Output = outputFile
	}
	if format != "" {
		cfg.Render.Format = format
	}
	if detailLevel != "" {
		cfg.Render.DetailLevel = detailLevel
	}
	if direction != "" {
		cfg.Render.Direction = direction
	}
	if autoRender {
		cfg.Render.AutoRender = true
	}
	if imageFormat != "" {
		cfg.Render.ImageFormat = imageFormat
	}
	if themeName != "" {
		cfg.Render.Theme = themeName
	}
}

// outputPath swaps the extension of the configured output for the chosen
// format, so `--format json` writes tierview.json rather than tierview.d2.
func outputPath(output, format string) string {
	if output == "" {
		output = "tierview.d2"
	}
	ext := "." + format
	if format == "yml" {
		ext = ".yaml"
	}
	current := filepath.Ext(output)
	if current == ext || (format == "yaml" && current == ".yml") {
		return output
	}
	if current == ".d2" || current == ".json" || current == ".yaml" || current == ".yml" || current == ".html" {
		return strings.TrimSuffix(output, current) + ext
	}
	return output
}

func summary(snap *model.Snapshot) string {
	return fmt.Sprintf("%d VPCs, %d subnets, %d instances, %d security groups, %d gateways",
		len(snap.Vpcs), snap.TotalSubnets, snap.TotalInstances, len(snap.SecurityGroups), len(snap.InternetGateways))
}

func autoRenderD2(d2File, format string) error {
	if format == "" {
		format = "svg"
	}

	// Check if d2 is available
	d2Path, err := findExecutable("d2")
	if err != nil {
		return fmt.Errorf("d2 not found in PATH, install it from https://d2lang.com/tour/install")
	}

	outFile := strings.TrimSuffix(d2File, filepath.Ext(d2File)) + "." + format

	cmd := execCommand(d2Path, d2File, outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("d2 render failed: %w", err)
	}

	ui.Success(fmt.Sprintf("Rendered %s", outFile))
	return nil
}
