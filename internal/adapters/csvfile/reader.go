// Package csvfile reads a period's submission directory: one CSV per
// reported level plus a period.json describing the reporting month.
package csvfile

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/secondary"
)

// Fixed columns every level file carries. Category columns follow, named
// exactly as in the service definition.
const (
	colCode            = "code"
	colName            = "name"
	colParentCode      = "parent_code"
	colParentName      = "parent_name"
	colFirstSpecialty  = "first_specialty"
	colSecondSpecialty = "second_specialty"
	colTotalEligible   = "total_eligible"
	colTotalResponses  = "total_responses"
)

// Reader implements secondary.DatasetReader over a directory of CSV files.
type Reader struct{}

// NewReader creates a new CSV dataset reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadPeriod reads period.json from the input directory.
func (r *Reader) ReadPeriod(ctx context.Context, dir string) (*secondary.PeriodMeta, error) {
	data, err := os.ReadFile(filepath.Join(dir, "period.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read period metadata: %w", err)
	}

	var meta secondary.PeriodMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse period metadata: %w", err)
	}
	if meta.PeriodName == "" || meta.YearNumber == "" {
		return nil, fmt.Errorf("period metadata must set period_name and year_number")
	}

	return &meta, nil
}

// ReadLevel reads <level>.csv from the input directory. The file must carry
// the fixed columns plus one column per category in the service definition.
func (r *Reader) ReadLevel(ctx context.Context, dir string, def *config.ServiceDef, level models.Level) (*secondary.LevelData, error) {
	path := filepath.Join(dir, level.String()+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s data: %w", level, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", level, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colCode, colName, colTotalResponses} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, required)
		}
	}
	categoryCols := make([]int, len(def.Categories))
	for i, category := range def.Categories {
		idx, ok := cols[strings.ToLower(category)]
		if !ok {
			return nil, fmt.Errorf("%s: missing category column %q", path, category)
		}
		categoryCols[i] = idx
	}

	tieBreakFields := def.TieBreakFields(level)

	data := &secondary.LevelData{ParentNames: make(map[string]string)}
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read row: %w", path, err)
		}
		line++

		entity, parentName, err := parseRow(row, cols, categoryCols, tieBreakFields, level)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		data.Entities = append(data.Entities, entity)
		if entity.ParentID != "" && parentName != "" {
			data.ParentNames[entity.ParentID] = parentName
		}
	}

	return data, nil
}

func parseRow(row []string, cols map[string]int, categoryCols []int, tieBreakFields []string, level models.Level) (*models.Entity, string, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	entity := &models.Entity{
		ID:       field(colCode),
		ParentID: field(colParentCode),
		Level:    level,
		Name:     field(colName),
	}
	if entity.ID == "" {
		return nil, "", fmt.Errorf("empty %s code", level)
	}

	var err error
	entity.TotalResponses, err = parseCount(field(colTotalResponses), colTotalResponses)
	if err != nil {
		return nil, "", err
	}
	if eligible := field(colTotalEligible); eligible != "" {
		entity.TotalEligible, err = parseCount(eligible, colTotalEligible)
		if err != nil {
			return nil, "", err
		}
	}

	entity.CategoryCounts = make([]int, len(categoryCols))
	for i, idx := range categoryCols {
		if idx >= len(row) {
			return nil, "", fmt.Errorf("row too short for category columns")
		}
		entity.CategoryCounts[i], err = parseCount(strings.TrimSpace(row[idx]), "category count")
		if err != nil {
			return nil, "", err
		}
	}

	entity.TieBreakKeys = make([]string, 0, len(tieBreakFields))
	for _, name := range tieBreakFields {
		switch name {
		case "name":
			entity.TieBreakKeys = append(entity.TieBreakKeys, entity.Name)
		case "first_specialty", "second_specialty":
			entity.TieBreakKeys = append(entity.TieBreakKeys, field(name))
		default:
			return nil, "", fmt.Errorf("unknown tie-break field %q", name)
		}
	}

	return entity, field(colParentName), nil
}

func parseCount(value, column string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", column, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s %d", column, n)
	}
	return n, nil
}
