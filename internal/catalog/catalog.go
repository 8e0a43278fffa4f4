package catalog

import (
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog holds the immutable task and material definitions.
// Built at load time, never mutated.
type Catalog struct {
	tasks     []Task
	materials []Material
	byID      map[string]*Task
}

// Load parses the embedded catalog data.
func Load() (*Catalog, error) {
	var taskFile struct {
		Tasks []Task `yaml:"tasks"`
	}
	if err := loadYAML("data/tasks.yaml", &taskFile); err != nil {
		return nil, err
	}

	var matFile struct {
		Materials []Material `yaml:"materials"`
	}
	if err := loadYAML("data/materials.yaml", &matFile); err != nil {
		return nil, err
	}

	c := &Catalog{
		tasks:     taskFile.Tasks,
		materials: matFile.Materials,
		byID:      make(map[string]*Task, len(taskFile.Tasks)),
	}
	for i := range c.tasks {
		t := &c.tasks[i]
		if t.ID == "" {
			return nil, fmt.Errorf("task %d: missing id", i)
		}
		if _, ok := t.Content[LangEN]; !ok {
			return nil, fmt.Errorf("task %s: missing canonical (en) content", t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("task %s: duplicate id", t.ID)
		}
		c.byID[t.ID] = t
	}
	for _, m := range c.materials {
		if m.Calculator == nil {
			continue
		}
		if _, ok := formulas[m.Calculator.Formula]; !ok {
			return nil, fmt.Errorf("material %s: unknown formula %q", m.ID, m.Calculator.Formula)
		}
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the process-wide catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load()
	})
	return defaultCat, defaultErr
}

func loadYAML(path string, out any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Tasks returns all task definitions in catalog order.
func (c *Catalog) Tasks() []Task {
	return slices.Clone(c.tasks)
}

// TaskByID returns the task with the given id, or nil.
func (c *Catalog) TaskByID(id string) *Task {
	return c.byID[id]
}

// TasksByLevel returns tasks at the given level. LevelAll passes everything.
func (c *Catalog) TasksByLevel(level Level) []Task {
	if level == LevelAll || level == "" {
		return c.Tasks()
	}
	var out []Task
	for _, t := range c.tasks {
		if t.Level == level {
			out = append(out, t)
		}
	}
	return out
}

// TasksByIDs returns the tasks whose ids appear in ids, in catalog order.
// Unknown ids are skipped. This backs the remediation (gym) view.
func (c *Catalog) TasksByIDs(ids []string) []Task {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Task
	for _, t := range c.tasks {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// Materials returns all material definitions in catalog order.
func (c *Catalog) Materials() []Material {
	return slices.Clone(c.materials)
}

// FilterMaterials returns materials matching the subject filter intersected
// with a case-insensitive substring match of query against the title and
// content in lang. SubjectAll disables the subject filter; an empty query
// matches everything.
func (c *Catalog) FilterMaterials(subject Subject, query string, lang Language) []Material {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Material
	for _, m := range c.materials {
		if subject != SubjectAll && subject != "" && m.Subject != subject {
			continue
		}
		if q != "" {
			title := strings.ToLower(m.TitleIn(lang))
			body := strings.ToLower(m.ContentIn(lang))
			if !strings.Contains(title, q) && !strings.Contains(body, q) {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
