package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"pywalfox/internal/adapters/instance"
	"pywalfox/internal/config"
	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
)

// TemplateCmd inspects or resets the stored templates
type TemplateCmd struct {
	Reset TemplateResetCmd `cmd:"reset" help:"Restore a template to its defaults"`
	Show  TemplateShowCmd  `cmd:"show" help:"Show the stored palette and theme templates" default:"1"`
}

// TemplateShowCmd prints the stored templates
type TemplateShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// TemplateResetCmd restores defaults
type TemplateResetCmd struct {
	Which string `arg:"" optional:"" help:"Which template to reset: palette, theme or all" enum:"palette,theme,all" default:"all"`
}

// Run executes the show command
func (s *TemplateShowCmd) Run(cli *CLI) error {
	data, err := cli.Container.Repository.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	if s.Format == "json" {
		out, err := json.MarshalIndent(data.Template, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	diff := data.Template.DiffFromDefault()
	changedPalette := toSet(diff.Palette)
	changedBrowser := toSet(diff.Browser)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Role\tIndex\tColor\t")
	fmt.Fprintln(w, "────\t─────\t─────\t")
	for _, role := range domain.Roles {
		indexCell, color := paletteCells(data.Template.Palette, data.PywalColors, role)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", role, indexCell, color, modifiedMark(changedPalette[role]))
	}
	w.Flush()

	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Theme key\tRole\t")
	fmt.Fprintln(w, "─────────\t────\t")
	for _, key := range domain.BrowserKeys {
		role, ok := data.Template.Browser[key]
		if !ok {
			role = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", key, role, modifiedMark(changedBrowser[key]))
	}
	w.Flush()

	return nil
}

// Run executes the reset command. The surface owns the database while it
// runs, so the reset refuses to race it.
func (s *TemplateResetCmd) Run(cli *CLI) error {
	lock, err := instance.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			return fmt.Errorf("%w: reset the template from the running surface instead", err)
		}
		return err
	}
	defer lock.Release()

	ctx := context.Background()
	repo := cli.Container.Repository

	if s.Which == "palette" || s.Which == "all" {
		if err := repo.SavePaletteTemplate(ctx, domain.DefaultPaletteTemplate()); err != nil {
			return fmt.Errorf("failed to reset palette template: %w", err)
		}
		logging.Logger.Info("Palette template reset")
		fmt.Println("Palette template restored to defaults")
	}
	if s.Which == "theme" || s.Which == "all" {
		if err := repo.SaveThemeTemplate(ctx, domain.DefaultThemeTemplate()); err != nil {
			return fmt.Errorf("failed to reset theme template: %w", err)
		}
		logging.Logger.Info("Theme template reset")
		fmt.Println("Theme template restored to defaults")
	}
	return nil
}

// paletteCells returns the index and color shown for role, "-" when unmapped.
func paletteCells(palette domain.PaletteTemplate, colors *domain.PaletteColors, role string) (string, string) {
	index, ok := palette[role]
	if !ok {
		return "-", "-"
	}
	color := "-"
	if colors != nil {
		if c, err := colors.At(index); err == nil {
			color = c
		}
	}
	return strconv.Itoa(index), color
}

func modifiedMark(changed bool) string {
	if changed {
		return "(modified)"
	}
	return ""
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
