package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/adapters/instance"
	"pywalfox/internal/adapters/storage"
	"pywalfox/internal/domain"
	"pywalfox/test/integration/harness"
)

// seedStore writes straight to the environment's database before the binary runs.
func seedStore(t *testing.T, env *harness.TestEnvironment, fn func(ctx context.Context, repo *storage.SQLiteRepository)) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(env.DBPath())
	require.NoError(t, err)
	defer repo.Close()
	fn(context.Background(), repo)
}

func greyPalette(t *testing.T) *domain.PaletteColors {
	t.Helper()
	raw := make([]string, domain.PaletteLength)
	for i := range raw {
		raw[i] = fmt.Sprintf("#%02x%02x%02x", i*8, i*8, i*8)
	}
	colors, err := domain.NewPaletteColors(raw)
	require.NoError(t, err)
	return &colors
}

// rowFields returns the whitespace-split cells of the first stdout row starting with first.
func rowFields(t *testing.T, result harness.CommandResult, first string) []string {
	t.Helper()
	for _, line := range strings.Split(result.Stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == first {
			return fields
		}
	}
	t.Fatalf("no row %q in:\n%s", first, result.Stdout)
	return nil
}

func loadTemplate(t *testing.T, env *harness.TestEnvironment) domain.Template {
	t.Helper()
	var tmpl domain.Template
	seedStore(t, env, func(ctx context.Context, repo *storage.SQLiteRepository) {
		data, err := repo.Load(ctx)
		require.NoError(t, err)
		tmpl = data.Template
	})
	return tmpl
}

type templateTestCase struct {
	name         string
	setup        func(t *testing.T, env *harness.TestEnvironment)
	args         []string
	wantExitCode int
	validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
}

func runTemplateCases(t *testing.T, tests []templateTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestTemplateShow(t *testing.T) {
	runTemplateCases(t, []templateTestCase{
		{
			name:         "defaults without colors",
			args:         []string{"template", "show"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Role")
				harness.AssertStdoutContains(t, result, "Theme key")
				assert.Equal(t, []string{"background", "0", "-"}, rowFields(t, result, "background"))
				assert.Equal(t, []string{"text", "7", "-"}, rowFields(t, result, "text"))
				assert.Equal(t, []string{"toolbar", "background"}, rowFields(t, result, "toolbar"))
				assert.NotContains(t, result.Stdout, "(modified)")
			},
		},
		{
			name:         "template is show by default",
			args:         []string{"template"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Theme key")
			},
		},
		{
			name: "stored colors are resolved",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				seedStore(t, env, func(ctx context.Context, repo *storage.SQLiteRepository) {
					require.NoError(t, repo.SaveColors(ctx, greyPalette(t)))
				})
			},
			args:         []string{"template", "show"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Equal(t, []string{"foreground", "15", "#787878"}, rowFields(t, result, "foreground"))
				assert.Equal(t, []string{"text", "7", "#383838"}, rowFields(t, result, "text"))
			},
		},
		{
			name: "edited entries are marked",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				seedStore(t, env, func(ctx context.Context, repo *storage.SQLiteRepository) {
					palette := domain.DefaultPaletteTemplate()
					palette[domain.RoleText] = 3
					require.NoError(t, repo.SavePaletteTemplate(ctx, palette))

					browser := domain.DefaultThemeTemplate()
					browser["toolbar"] = domain.RoleAccentSecondary
					require.NoError(t, repo.SaveThemeTemplate(ctx, browser))
				})
			},
			args:         []string{"template", "show"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Equal(t, []string{"text", "3", "-", "(modified)"}, rowFields(t, result, "text"))
				assert.Equal(t, []string{"toolbar", "accentSecondary", "(modified)"}, rowFields(t, result, "toolbar"))
				assert.Equal(t, []string{"background", "0", "-"}, rowFields(t, result, "background"))
			},
		},
		{
			name: "unmapped role shows no index",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				seedStore(t, env, func(ctx context.Context, repo *storage.SQLiteRepository) {
					require.NoError(t, repo.SaveColors(ctx, greyPalette(t)))
					palette := domain.DefaultPaletteTemplate()
					delete(palette, domain.RoleText)
					require.NoError(t, repo.SavePaletteTemplate(ctx, palette))
				})
			},
			args:         []string{"template", "show"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				// Not index 0, which would claim the background color
				assert.Equal(t, []string{"text", "-", "-", "(modified)"}, rowFields(t, result, "text"))
				assert.Equal(t, []string{"background", "0", "#000000"}, rowFields(t, result, "background"))
			},
		},
		{
			name:         "json format",
			args:         []string{"template", "show", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var tmpl domain.Template
				harness.AssertValidJSON(t, result, &tmpl)
				assert.Equal(t, domain.DefaultTemplate(), tmpl)
			},
		},
	})
}

func TestTemplateReset(t *testing.T) {
	edited := func(t *testing.T, env *harness.TestEnvironment) {
		seedStore(t, env, func(ctx context.Context, repo *storage.SQLiteRepository) {
			palette := domain.DefaultPaletteTemplate()
			palette[domain.RoleText] = 3
			require.NoError(t, repo.SavePaletteTemplate(ctx, palette))

			browser := domain.DefaultThemeTemplate()
			browser["toolbar"] = domain.RoleAccentSecondary
			require.NoError(t, repo.SaveThemeTemplate(ctx, browser))
		})
	}

	runTemplateCases(t, []templateTestCase{
		{
			name:         "reset all by default",
			setup:        edited,
			args:         []string{"template", "reset"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Palette template restored to defaults")
				harness.AssertStdoutContains(t, result, "Theme template restored to defaults")
				assert.Equal(t, domain.DefaultTemplate(), loadTemplate(t, env))
			},
		},
		{
			name:         "reset palette keeps theme edits",
			setup:        edited,
			args:         []string{"template", "reset", "palette"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Palette template restored to defaults")
				assert.NotContains(t, result.Stdout, "Theme template")

				tmpl := loadTemplate(t, env)
				assert.Equal(t, domain.DefaultPaletteTemplate(), tmpl.Palette)
				assert.Equal(t, domain.RoleAccentSecondary, tmpl.Browser["toolbar"])
			},
		},
		{
			name:         "reset theme keeps palette edits",
			setup:        edited,
			args:         []string{"template", "reset", "theme"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Theme template restored to defaults")
				assert.NotContains(t, result.Stdout, "Palette template")

				tmpl := loadTemplate(t, env)
				assert.Equal(t, domain.DefaultThemeTemplate(), tmpl.Browser)
				assert.Equal(t, 3, tmpl.Palette[domain.RoleText])
			},
		},
		{
			name:         "unknown target is rejected",
			args:         []string{"template", "reset", "browser"},
			wantExitCode: 1,
		},
		{
			name: "reset refused while a surface holds the lock",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				edited(t, env)
				lock, err := instance.Acquire(env.LockPath())
				require.NoError(t, err)
				t.Cleanup(func() { _ = lock.Release() })
			},
			args:         []string{"template", "reset"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "another pywalfox instance is running")
				harness.AssertStderrContains(t, result, "reset the template from the running surface instead")

				tmpl := loadTemplate(t, env)
				assert.Equal(t, 3, tmpl.Palette[domain.RoleText])
				assert.Equal(t, domain.RoleAccentSecondary, tmpl.Browser["toolbar"])
			},
		},
	})
}
