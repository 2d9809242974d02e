package checks

import (
	"sort"

	"card-assets/core/database"

	"gorm.io/gorm"
)

// Database check outcomes.
const (
	DatabaseOK         = "ok"
	DatabaseDisabled   = "disabled"
	DatabaseIncomplete = "incomplete"
	DatabaseError      = "error"
)

// SchemaReport strictly types the result of a catalog schema check.
type SchemaReport struct {
	Status         string              `json:"status"`
	MissingColumns map[string][]string `json:"missing_columns,omitempty"`
	Errors         []string            `json:"errors,omitempty"`
}

// CheckSchema compares the catalog tables with the expected columns.
// A nil db reports the catalog as disabled.
func CheckSchema(db *gorm.DB, expected map[string][]string) SchemaReport {
	if db == nil {
		return SchemaReport{Status: DatabaseDisabled}
	}

	report := SchemaReport{Status: DatabaseOK}

	tables := make([]string, 0, len(expected))
	for table := range expected {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, expected[table])
		if err != nil {
			report.Status = DatabaseError
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		if len(missing) > 0 {
			if report.MissingColumns == nil {
				report.MissingColumns = make(map[string][]string)
			}
			report.MissingColumns[table] = missing
			if report.Status == DatabaseOK {
				report.Status = DatabaseIncomplete
			}
		}
	}
	return report
}
