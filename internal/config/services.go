package config

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/example/fftpub/internal/models"
)

//go:embed services.yaml
var servicesYAML []byte

// ServiceDef describes one published service type: which hierarchy levels it
// reports, its response categories, and how each level ranks and renders.
type ServiceDef struct {
	Name        string `yaml:"-"`
	DisplayName string `yaml:"display_name"`
	ReportTitle string `yaml:"report_title"`

	// Levels lists the reported levels topmost first. They must form a
	// contiguous run of the hierarchy so every child level's parent is
	// also reported.
	Levels []string `yaml:"levels"`

	// Categories is the response breakdown in publication order.
	Categories []string `yaml:"categories"`

	// PositiveCategories / NegativeCategories index into Categories for
	// the percentage numerators. Categories in neither set (e.g. "Don't
	// Know") are excluded from both.
	PositiveCategories []int `yaml:"positive_categories"`
	NegativeCategories []int `yaml:"negative_categories"`

	// Sheets maps level name to output workbook sheet name.
	Sheets map[string]string `yaml:"sheets"`

	// TieBreak maps level name to the ordered fields used to break rank
	// ties; valid fields are "name", "first_specialty", "second_specialty".
	TieBreak map[string][]string `yaml:"tie_break"`
}

type serviceFile struct {
	Services map[string]*ServiceDef `yaml:"services"`
}

var (
	servicesOnce sync.Once
	services     map[string]*ServiceDef
	servicesErr  error
)

func loadServices() {
	var file serviceFile
	if err := yaml.Unmarshal(servicesYAML, &file); err != nil {
		servicesErr = fmt.Errorf("failed to parse service definitions: %w", err)
		return
	}
	for name, def := range file.Services {
		def.Name = name
		if err := def.validate(); err != nil {
			servicesErr = fmt.Errorf("service %s: %w", name, err)
			return
		}
	}
	services = file.Services
}

func (d *ServiceDef) validate() error {
	if len(d.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	prev := -1
	for i, name := range d.Levels {
		level, err := models.ParseLevel(name)
		if err != nil {
			return err
		}
		if i > 0 && int(level) != prev+1 {
			return fmt.Errorf("levels must be contiguous top-down, got %v", d.Levels)
		}
		prev = int(level)
	}
	if len(d.Categories) == 0 {
		return fmt.Errorf("no categories defined")
	}
	for _, idx := range append(append([]int{}, d.PositiveCategories...), d.NegativeCategories...) {
		if idx < 0 || idx >= len(d.Categories) {
			return fmt.Errorf("category index %d out of range", idx)
		}
	}
	return nil
}

// Service returns the definition for the named service type.
func Service(name string) (*ServiceDef, error) {
	servicesOnce.Do(loadServices)
	if servicesErr != nil {
		return nil, servicesErr
	}
	def, ok := services[name]
	if !ok {
		return nil, fmt.Errorf("unknown service type %q", name)
	}
	return def, nil
}

// ServiceNames returns the known service types in sorted order.
func ServiceNames() []string {
	servicesOnce.Do(loadServices)
	var names []string
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsedLevels returns the service's levels as models.Level values, topmost
// first.
func (d *ServiceDef) ParsedLevels() []models.Level {
	levels := make([]models.Level, 0, len(d.Levels))
	for _, name := range d.Levels {
		level, err := models.ParseLevel(name)
		if err != nil {
			continue // validated at load
		}
		levels = append(levels, level)
	}
	return levels
}

// BottomLevel returns the service's most granular reported level.
func (d *ServiceDef) BottomLevel() models.Level {
	levels := d.ParsedLevels()
	return levels[len(levels)-1]
}

// SheetName returns the output sheet for a level, falling back to the level
// name.
func (d *ServiceDef) SheetName(level models.Level) string {
	if name, ok := d.Sheets[level.String()]; ok {
		return name
	}
	return level.String()
}

// TieBreakFields returns the ordered tie-break fields for a level,
// defaulting to the entity name.
func (d *ServiceDef) TieBreakFields(level models.Level) []string {
	if fields, ok := d.TieBreak[level.String()]; ok && len(fields) > 0 {
		return fields
	}
	return []string{"name"}
}
