package rosterstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
)

// Default keys
const (
	DefaultRosterKey = "students"
	DefaultThemeKey  = "theme"
)

// Repository stores the roster as JSON and the theme as a literal string.
type Repository struct {
	store     core.KVStore
	logger    core.Logger
	rosterKey string
	themeKey  string
}

var _ student.Repository = (*Repository)(nil) // interface compliance check

// NewRepository uses the default keys when conf leaves them empty.
func NewRepository(store core.KVStore, conf core.StorageConfig, logger core.Logger) *Repository {
	repo := &Repository{
		store:     store,
		logger:    logger,
		rosterKey: conf.RosterKey,
		themeKey:  conf.ThemeKey,
	}
	if repo.rosterKey == "" {
		repo.rosterKey = DefaultRosterKey
	}
	if repo.themeKey == "" {
		repo.themeKey = DefaultThemeKey
	}
	return repo
}

// SaveRoster overwrites the persisted roster.
func (repo *Repository) SaveRoster(ctx context.Context, roster student.Roster) error {
	if roster == nil {
		roster = student.Roster{}
	}
	data, err := json.Marshal(roster)
	if err != nil {
		return errors.Wrap(err, "encoding roster")
	}
	return repo.store.Set(ctx, repo.rosterKey, string(data))
}

// LoadRoster returns the persisted roster as is, or the sample roster when
// nothing is stored or the stored value is not valid JSON.
func (repo *Repository) LoadRoster(ctx context.Context) (student.Roster, error) {
	data, err := repo.store.Get(ctx, repo.rosterKey)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			repo.logger.Info("no roster stored, using sample roster", map[string]interface{}{"key": repo.rosterKey})
			return student.SeedRoster(), nil
		}
		return nil, errors.Wrap(err, "reading roster")
	}

	var roster student.Roster
	if err := json.Unmarshal([]byte(data), &roster); err != nil {
		repo.logger.Warn("stored roster is corrupt, using sample roster", err, map[string]interface{}{"key": repo.rosterKey})
		return student.SeedRoster(), nil
	}
	if roster == nil { // JSON null
		repo.logger.Warn("stored roster is null, using sample roster", map[string]interface{}{"key": repo.rosterKey})
		return student.SeedRoster(), nil
	}
	return roster, nil
}

func (repo *Repository) SaveTheme(ctx context.Context, theme student.Theme) error {
	return repo.store.Set(ctx, repo.themeKey, string(theme))
}

// LoadTheme returns the persisted theme, light if absent or unknown.
func (repo *Repository) LoadTheme(ctx context.Context) (student.Theme, error) {
	val, err := repo.store.Get(ctx, repo.themeKey)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			return student.ThemeLight, nil
		}
		return student.ThemeLight, errors.Wrap(err, "reading theme")
	}
	theme, ok := student.ParseTheme(val)
	if !ok {
		repo.logger.Warn("stored theme is invalid, using light theme", map[string]interface{}{"key": repo.themeKey, "value": val})
	}
	return theme, nil
}

// Clear removes the persisted roster and theme.
func (repo *Repository) Clear(ctx context.Context) error {
	if err := repo.store.Delete(ctx, repo.rosterKey); err != nil {
		return err
	}
	return repo.store.Delete(ctx, repo.themeKey)
}
