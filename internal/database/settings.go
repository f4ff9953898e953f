package database

import (
	"context"
	"fmt"
	"strconv"

	"github.com/arjunmw/focal/internal/timer"
)

// Settings keys.
const (
	settingMuted   = "muted"
	settingPremium = "premium"
	settingTheme   = "theme"
)

func minutesKey(mode timer.Mode) string {
	return fmt.Sprintf("%s_minutes", mode)
}

// GetSetting returns the raw value for key and whether it was present.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting upserts a raw setting value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingErr("set", err)
}

func (d *Database) getBool(ctx context.Context, key string) bool {
	raw, ok := d.GetSetting(ctx, key)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

func (d *Database) setBool(ctx context.Context, key string, v bool) error {
	return d.SetSetting(ctx, key, strconv.FormatBool(v))
}

// LoadTimerConfig overlays stored per-mode durations onto base. Unknown or
// out-of-range stored values are clamped through the timer config itself.
func (d *Database) LoadTimerConfig(ctx context.Context, base timer.Config) timer.Config {
	cfg := base
	for _, mode := range timer.Modes() {
		raw, ok := d.GetSetting(ctx, minutesKey(mode))
		if !ok {
			continue
		}
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			continue
		}
		cfg.SetMinutes(mode, minutes)
	}
	return cfg
}

// SaveMinutes persists the configured duration for a mode.
func (d *Database) SaveMinutes(ctx context.Context, mode timer.Mode, minutes int) error {
	return d.SetSetting(ctx, minutesKey(mode), strconv.Itoa(minutes))
}

func (d *Database) Muted(ctx context.Context) bool { return d.getBool(ctx, settingMuted) }

func (d *Database) SetMuted(ctx context.Context, muted bool) error {
	return d.setBool(ctx, settingMuted, muted)
}

func (d *Database) Premium(ctx context.Context) bool { return d.getBool(ctx, settingPremium) }

func (d *Database) SetPremium(ctx context.Context, premium bool) error {
	return d.setBool(ctx, settingPremium, premium)
}

// SeedDefaults writes first-run defaults from the config file without
// clobbering values the user has already changed in-app.
func (d *Database) SeedDefaults(ctx context.Context, muted bool, theme string) error {
	seeds := map[string]string{
		settingMuted: strconv.FormatBool(muted),
	}
	if theme != "" {
		seeds[settingTheme] = theme
	}
	for key, value := range seeds {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING", key, value)
		if err != nil {
			return wrapSettingErr("seed", err)
		}
	}
	return nil
}

// Theme returns the stored theme name, if any.
func (d *Database) Theme(ctx context.Context) (string, bool) {
	return d.GetSetting(ctx, settingTheme)
}

func (d *Database) SetTheme(ctx context.Context, name string) error {
	return d.SetSetting(ctx, settingTheme, name)
}
