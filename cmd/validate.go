package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/render"
	"github.com/ThomasCrouzet/tierview/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your tierview.yml configuration",
	Long: `Check that the configuration is consistent and that the selected endpoint
is usable: the aws binary is available, LocalStack answers its health
check or the AWS credentials are accepted.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, restore, err := setup()
	if err != nil {
		return err
	}
	defer restore()

	fmt.Fprintln(ui.Out, ui.Bold("Validating tierview.yml..."))

	failed := 0
	for _, ve := range cfg.Validate() {
		ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
		failed++
	}
	if !render.HasTheme(cfg.Render.Theme) {
		ui.ValidationErr("render.theme", fmt.Sprintf("unknown theme %q", cfg.Render.Theme),
			"use one of: "+strings.Join(render.ThemeNames(), ", "))
		failed++
	}

	passed := 0
	// The endpoint check is only meaningful once the config itself holds up
	if failed == 0 {
		ui.ValidationOK("config", "configuration valid")
		passed++

		src := inventory.NewSource(cfg.InventoryOptions())
		if err := src.Preflight(cmd.Context()); err != nil {
			check, hint := preflightLabel(src), ""
			var pe *inventory.PreflightError
			if errors.As(err, &pe) {
				check, hint = pe.Check, pe.Hint
			}
			ui.ValidationErr(check, err.Error(), hint)
			failed++
		} else {
			ui.ValidationOK(preflightLabel(src), "reachable")
			passed++
		}
	}

	fmt.Fprintln(ui.Out)
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
	} else {
		fmt.Fprintf(ui.Out, "%d checks passed, %d errors\n", passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d validation errors", failed)
	}
	return nil
}
