package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

// ValidateRosterSchema checks the roster for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRosterSchema(schema *RosterSchema) []error {
	var errs []error

	if len(schema.People) == 0 {
		errs = append(errs, fmt.Errorf("people: at least one person is required"))
	}

	ids := make(map[string]bool, len(schema.People))
	for i, p := range schema.People {
		prefix := fmt.Sprintf("people[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			ids[p.ID] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if _, ok := domain.ParseRole(p.Role); !ok {
			errs = append(errs, fmt.Errorf("%s.role: unknown role %q", prefix, p.Role))
		}
		errs = append(errs, validateBusy(prefix, p.Busy)...)
	}

	return errs
}

func validateBusy(prefix string, busy []BusyImport) []error {
	var errs []error
	for j, b := range busy {
		field := fmt.Sprintf("%s.busy[%d]", prefix, j)
		start, startErr := time.Parse(time.RFC3339, b.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid timestamp %q (expected RFC3339)", field, b.Start))
		}
		end, endErr := time.Parse(time.RFC3339, b.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid timestamp %q (expected RFC3339)", field, b.End))
		}
		if startErr == nil && endErr == nil && !start.Before(end) {
			errs = append(errs, fmt.Errorf("%s: start %q must be before end %q", field, b.Start, b.End))
		}
	}
	return errs
}
