package student

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	// Repository persists roster snapshots and the theme preference.
	// LoadRoster and LoadTheme recover absent or corrupt values themselves;
	// a returned error means the store could not be read at all.
	Repository interface {
		SaveRoster(ctx context.Context, roster Roster) error
		LoadRoster(ctx context.Context) (Roster, error)
		SaveTheme(ctx context.Context, theme Theme) error
		LoadTheme(ctx context.Context) (Theme, error)
	}

	// Service owns the roster and the theme. Every mutation writes one snapshot;
	// reads are derived from the current roster and cached per version.
	Service struct {
		repo     Repository
		subjects []string
		logger   core.Logger

		mu      sync.RWMutex
		roster  Roster
		theme   Theme
		version uint64

		memoMu sync.Mutex
		memo   derivedCache
	}

	derivedCache struct {
		version  uint64
		valid    bool
		stats    Stats
		subjects []SubjectAverage
		records  []Record
	}
)

func NewService(repo Repository, subjects []string, logger core.Logger) *Service {
	if len(subjects) == 0 {
		subjects = core.DefaultSubjects
	}
	return &Service{
		repo:     repo,
		subjects: append([]string(nil), subjects...),
		logger:   logger,
		roster:   SeedRoster(),
		theme:    ThemeLight,
	}
}

// Init loads the persisted roster and theme. Unreadable stores fall back to the defaults.
func (svc *Service) Init(ctx context.Context) {
	roster, err := svc.repo.LoadRoster(ctx)
	if err != nil {
		svc.logger.Error("loading roster, using sample roster", err)
		roster = SeedRoster()
	}
	theme, err := svc.repo.LoadTheme(ctx)
	if err != nil {
		svc.logger.Error("loading theme, using light theme", err)
		theme = ThemeLight
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.roster = roster
	svc.theme = theme
	svc.version++
}

func (svc *Service) Subjects() []string {
	return append([]string(nil), svc.subjects...)
}

func (svc *Service) Roster() Roster {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.roster.Clone()
}

// Version is incremented on every roster change.
func (svc *Service) Version() uint64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.version
}

func (svc *Service) Theme() Theme {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.theme
}

// commit swaps the roster and persists it. Must be called with mu held.
// The new roster is kept even if it could not be saved.
func (svc *Service) commit(ctx context.Context, roster Roster) error {
	svc.roster = roster
	svc.version++
	if err := svc.repo.SaveRoster(ctx, roster); err != nil {
		err = errors.Wrap(err, "saving roster")
		svc.logger.Error("roster not persisted", err)
		return err
	}
	return nil
}

func (svc *Service) Add(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(ctx, svc.subjects); err != nil {
		return Student{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	roster, st := svc.roster.Add(ns)
	return st, svc.commit(ctx, roster)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	orig, ok := svc.roster.Find(id)
	if !ok {
		return Student{}, ErrNotFound
	}
	if err := us.Validate(ctx, orig, svc.subjects); err != nil {
		return Student{}, err
	}

	roster, st, err := svc.roster.Update(id, us)
	if err != nil {
		return Student{}, err
	}
	return st, svc.commit(ctx, roster)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	roster, err := svc.roster.Delete(id)
	if err != nil {
		return err
	}
	return svc.commit(ctx, roster)
}

// Reset replaces the roster with the sample roster.
func (svc *Service) Reset(ctx context.Context) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.commit(ctx, SeedRoster())
}

func (svc *Service) SetTheme(ctx context.Context, theme Theme) error {
	parsed, ok := ParseTheme(string(theme))
	if !ok {
		return core.NewValidationError(
			errors.Errorf("invalid theme %q", theme),
			core.FieldError{Field: "theme", Error: "theme must be one of light, dark"},
		)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.saveTheme(ctx, parsed)
}

func (svc *Service) ToggleTheme(ctx context.Context) (Theme, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	theme := svc.theme.Toggle()
	return theme, svc.saveTheme(ctx, theme)
}

func (svc *Service) saveTheme(ctx context.Context, theme Theme) error {
	svc.theme = theme
	if err := svc.repo.SaveTheme(ctx, theme); err != nil {
		err = errors.Wrap(err, "saving theme")
		svc.logger.Error("theme not persisted", err)
		return err
	}
	return nil
}

// derived returns the cached derivations of the current roster version.
func (svc *Service) derived() derivedCache {
	svc.mu.RLock()
	roster, version := svc.roster, svc.version
	svc.mu.RUnlock()

	svc.memoMu.Lock()
	defer svc.memoMu.Unlock()

	if !svc.memo.valid || svc.memo.version != version {
		svc.memo = derivedCache{
			version:  version,
			valid:    true,
			stats:    ComputeStats(roster, svc.subjects),
			subjects: SubjectPerformance(roster, svc.subjects),
			records:  Derive(roster),
		}
	}
	return svc.memo
}

// Stats returns the dashboard aggregates.
func (svc *Service) Stats() Stats {
	stats := svc.derived().stats
	stats.SubjectPerformance = append([]SubjectAverage(nil), stats.SubjectPerformance...)
	stats.GradeDistribution.Buckets = append([]GradeCount(nil), stats.GradeDistribution.Buckets...)
	return stats
}

// SubjectAverages returns the unrounded average of every configured subject.
func (svc *Service) SubjectAverages() []SubjectAverage {
	return append([]SubjectAverage(nil), svc.derived().subjects...)
}

// Query filters and sorts the roster. A nil spec keeps roster order.
func (svc *Service) Query(search string, spec *SortSpec) []Record {
	records := Filter(svc.derived().records, search)
	for i := range records {
		records[i].Student = records[i].Student.clone()
	}
	SortRecords(records, spec)
	return records
}

// Preview returns the derived record of one student.
func (svc *Service) Preview(id string) (Record, error) {
	for _, rec := range svc.derived().records {
		if rec.ID == id {
			rec.Student = rec.Student.clone()
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}
