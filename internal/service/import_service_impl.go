package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/db"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/generation"
	"github.com/alexanderramin/quorum/internal/importer"
	"github.com/alexanderramin/quorum/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// ImportRoster upserts every person in the file and adds their busy
// intervals. The whole file is applied in one transaction.
func (s *importService) ImportRoster(ctx context.Context, filePath string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": filePath}
	defer func() { s.observe(ctx, "import-roster", startedAt, fields, err) }()

	var schema *importer.RosterSchema
	schema, err = importer.LoadRosterSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	if errs := importer.ValidateRosterSchema(schema); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	var roster *importer.Roster
	roster, err = importer.ConvertRoster(schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting roster: %w", err)
	}

	result, err = s.persist(ctx, roster.People, roster.Busy, false)
	if err != nil {
		return nil, err
	}
	fields["people"] = result.PeopleCount
	fields["busy"] = result.BusyCount
	return result, nil
}

// ImportICS adds the blocking events of an iCalendar file to one person's
// calendar.
func (s *importService) ImportICS(ctx context.Context, personID, filePath string, loc *time.Location) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": filePath, "person": personID}
	defer func() { s.observe(ctx, "import-ics", startedAt, fields, err) }()

	var parsed *importer.ICSResult
	parsed, err = importer.LoadICS(filePath, personID, loc)
	if err != nil {
		return nil, fmt.Errorf("loading calendar file: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPeople := repository.NewSQLitePersonRepo(tx)
		txBusy := repository.NewSQLiteBusyRepo(tx)

		if _, err := txPeople.GetByID(ctx, personID); err != nil {
			return fmt.Errorf("checking person %s: %w", personID, err)
		}
		for _, b := range parsed.Busy {
			if err := txBusy.Create(ctx, b); err != nil {
				return fmt.Errorf("creating busy interval %q: %w", b.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{BusyCount: len(parsed.Busy), Skipped: parsed.Skipped}
	fields["busy"] = result.BusyCount
	fields["skipped"] = result.Skipped
	return result, nil
}

// Seed writes a generated demo organisation. Running it again with the same
// options is a no-op for busy intervals that already exist.
func (s *importService) Seed(ctx context.Context, opts generation.SeedOptions) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"seed": opts.Seed}
	defer func() { s.observe(ctx, "seed", startedAt, fields, err) }()

	if err = opts.Validate(); err != nil {
		return nil, err
	}
	ds := generation.Generate(opts)
	result, err = s.persist(ctx, ds.People, ds.Busy, true)
	if err != nil {
		return nil, err
	}
	fields["people"] = result.PeopleCount
	fields["busy"] = result.BusyCount
	return result, nil
}

func (s *importService) persist(ctx context.Context, people []*domain.Person, busy []*domain.BusyInterval, skipExisting bool) (*ImportResult, error) {
	result := &ImportResult{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPeople := repository.NewSQLitePersonRepo(tx)
		txBusy := repository.NewSQLiteBusyRepo(tx)

		for _, p := range people {
			if err := txPeople.Upsert(ctx, p); err != nil {
				return fmt.Errorf("saving person %q: %w", p.ID, err)
			}
		}
		for _, b := range busy {
			if skipExisting {
				_, err := txBusy.GetByID(ctx, b.ID)
				if err == nil {
					result.Skipped++
					continue
				}
				if !errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("checking busy interval %s: %w", b.ID, err)
				}
			}
			if err := txBusy.Create(ctx, b); err != nil {
				return fmt.Errorf("creating busy interval for %q: %w", b.OwnerID, err)
			}
			result.BusyCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.PeopleCount = len(people)
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
