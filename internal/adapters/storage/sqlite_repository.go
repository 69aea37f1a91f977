package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/ports"
)

// SQLiteRepository implements ports.SettingsRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SettingsRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the pywalfox logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PYWALFOX_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read while the surface is running
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PaletteEntryModel{}, &ThemeEntryModel{}, &OptionModel{}, &StateModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository inside a PYWALFOX_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "settings.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements SettingsReader.Load
func (r *SQLiteRepository) Load(ctx context.Context) (domain.InitialData, error) {
	var (
		palette []PaletteEntryModel
		theme   []ThemeEntryModel
		options []OptionModel
		state   StateModel
	)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Find(&palette).Error; err != nil {
				return fmt.Errorf("failed to load palette template: %w", err)
			}
			if err := tx.Find(&theme).Error; err != nil {
				return fmt.Errorf("failed to load theme template: %w", err)
			}
			if err := tx.Find(&options).Error; err != nil {
				return fmt.Errorf("failed to load options: %w", err)
			}
			if err := tx.Where("id = ?", stateRowID).First(&state).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("failed to load state: %w", err)
				}
				state = defaultState()
			}
			return nil
		})
	}, 3)
	if err != nil {
		return domain.InitialData{}, err
	}

	data := domain.InitialData{
		Enabled:   state.Enabled,
		FontSize:  state.FontSize,
		Options:   optionModelsToDomain(options),
		ThemeMode: domain.ThemeMode(state.ThemeMode),
		Template: domain.Template{
			Browser: domain.DefaultThemeTemplate(),
			Palette: domain.DefaultPaletteTemplate(),
		},
	}
	if len(palette) > 0 {
		data.Template.Palette = paletteModelsToDomain(palette)
	}
	if len(theme) > 0 {
		data.Template.Browser = themeModelsToDomain(theme)
	}

	colors, err := colorsFromColumn(state.Colors)
	if err != nil {
		// A corrupt palette is dropped; the next fetch replaces it
		logging.Logger.Warn("Ignoring stored colors", "error", err)
	}
	data.PywalColors = colors

	return data, nil
}

// SavePaletteTemplate implements SettingsWriter.SavePaletteTemplate
func (r *SQLiteRepository) SavePaletteTemplate(ctx context.Context, palette domain.PaletteTemplate) error {
	if err := palette.Validate(); err != nil {
		return err
	}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&PaletteEntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear palette template: %w", err)
			}
			rows := domainToPaletteModels(palette)
			if len(rows) == 0 {
				return nil
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to save palette template: %w", err)
			}
			return nil
		})
	}, 3)
}

// SaveThemeTemplate implements SettingsWriter.SaveThemeTemplate
func (r *SQLiteRepository) SaveThemeTemplate(ctx context.Context, browser domain.ThemeTemplate) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&ThemeEntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear theme template: %w", err)
			}
			rows := domainToThemeModels(browser)
			if len(rows) == 0 {
				return nil
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to save theme template: %w", err)
			}
			return nil
		})
	}, 3)
}

// SaveOption implements SettingsWriter.SaveOption
func (r *SQLiteRepository) SaveOption(ctx context.Context, option domain.OptionData) error {
	return withRetry(func() error {
		model := OptionModel{Enabled: option.Enabled, Name: option.Option}
		return r.db.WithContext(ctx).Save(&model).Error
	}, 3)
}

// SaveColors implements SettingsWriter.SaveColors
func (r *SQLiteRepository) SaveColors(ctx context.Context, colors *domain.PaletteColors) error {
	column, err := colorsToColumn(colors)
	if err != nil {
		return err
	}
	return r.updateState(ctx, func(s *StateModel) { s.Colors = column })
}

// SaveEnabled implements SettingsWriter.SaveEnabled
func (r *SQLiteRepository) SaveEnabled(ctx context.Context, enabled bool) error {
	return r.updateState(ctx, func(s *StateModel) { s.Enabled = enabled })
}

// SaveFontSize implements SettingsWriter.SaveFontSize
func (r *SQLiteRepository) SaveFontSize(ctx context.Context, size int) error {
	return r.updateState(ctx, func(s *StateModel) { s.FontSize = size })
}

// SaveThemeMode implements SettingsWriter.SaveThemeMode
func (r *SQLiteRepository) SaveThemeMode(ctx context.Context, mode domain.ThemeMode) error {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	return r.updateState(ctx, func(s *StateModel) { s.ThemeMode = string(mode) })
}

// updateState applies fn to the state row, creating it when missing
func (r *SQLiteRepository) updateState(ctx context.Context, fn func(*StateModel)) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var state StateModel
			if err := tx.Where("id = ?", stateRowID).First(&state).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("failed to load state: %w", err)
				}
				state = defaultState()
			}
			fn(&state)
			if err := tx.Save(&state).Error; err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}
			return nil
		})
	}, 3)
}

func defaultState() StateModel {
	return StateModel{
		FontSize:  domain.DefaultFontSize,
		ID:        stateRowID,
		ThemeMode: string(domain.ThemeModeDark),
	}
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
