package storage

import "time"

// PaletteEntryModel is the GORM model for one role of the palette template
type PaletteEntryModel struct {
	CreatedAt    time.Time
	PaletteIndex int    `gorm:"not null;check:palette_index >= 0 AND palette_index < 16"`
	Role         string `gorm:"primaryKey"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PaletteEntryModel) TableName() string { return "palette_template" }

// ThemeEntryModel is the GORM model for one key of the browser theme template
type ThemeEntryModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	Role      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ThemeEntryModel) TableName() string { return "theme_template" }

// OptionModel is the GORM model for option toggles
type OptionModel struct {
	CreatedAt time.Time
	Enabled   bool   `gorm:"not null;default:false"`
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OptionModel) TableName() string { return "options" }

// StateModel is the GORM model for the single extension state row
type StateModel struct {
	Colors    string `gorm:"not null;default:''"` // JSON array, empty when disabled
	CreatedAt time.Time
	Enabled   bool   `gorm:"not null;default:false"`
	FontSize  int    `gorm:"not null;default:0"`
	ID        uint   `gorm:"primaryKey"`
	ThemeMode string `gorm:"not null;default:'dark';check:theme_mode IN ('dark','light','auto')"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (StateModel) TableName() string { return "extension_state" }

const stateRowID = 1
