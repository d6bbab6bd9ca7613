package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// ValidateImportSchema checks every entry and returns all problems found,
// each prefixed with the entry's index.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	seen := make(map[string]int, len(schema.Items))

	for i, it := range schema.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		if it.ID != "" {
			if first, dup := seen[it.ID]; dup {
				errs = append(errs, fmt.Errorf("%s.id %q duplicates items[%d]", prefix, it.ID, first))
			} else {
				seen[it.ID] = i
			}
		}
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		start, startErr := parseField(prefix+".start", it.Start)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		end, endErr := parseField(prefix+".end", it.End)
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: end before start", prefix))
		}
	}

	return errs
}

func parseField(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
	}
	return t, nil
}
