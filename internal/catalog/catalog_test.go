package catalog

import "testing"

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLoadEmbeddedData(t *testing.T) {
	c := loadTestCatalog(t)
	if len(c.Tasks()) == 0 {
		t.Fatal("expected tasks in embedded catalog")
	}
	if len(c.Materials()) == 0 {
		t.Fatal("expected materials in embedded catalog")
	}
	for _, task := range c.Tasks() {
		if task.Text(LangEN).Question == "" {
			t.Errorf("task %s: empty canonical question", task.ID)
		}
	}
}

func TestTasksByLevel(t *testing.T) {
	c := loadTestCatalog(t)

	school := c.TasksByLevel(LevelSchool)
	if len(school) == 0 {
		t.Fatal("expected School tasks")
	}
	for _, task := range school {
		if task.Level != LevelSchool {
			t.Errorf("task %s leaked into School filter (level %s)", task.ID, task.Level)
		}
	}

	if got, all := len(c.TasksByLevel(LevelAll)), len(c.Tasks()); got != all {
		t.Errorf("LevelAll = %d tasks, want %d", got, all)
	}
}

func TestTasksByIDs(t *testing.T) {
	c := loadTestCatalog(t)

	got := c.TasksByIDs([]string{"k12-phys-01", "phd-phys-01", "no-such-task"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (unknown ids skipped)", len(got))
	}
	// Catalog order, not input order.
	if got[0].ID != "k12-phys-01" || got[1].ID != "phd-phys-01" {
		t.Errorf("order = %s, %s", got[0].ID, got[1].ID)
	}

	if c.TasksByIDs(nil) != nil {
		t.Error("expected nil for empty id set")
	}
}

func TestTaskByID(t *testing.T) {
	c := loadTestCatalog(t)
	if task := c.TaskByID("k12-math-01"); task == nil || task.Topic != "Algebra" {
		t.Errorf("TaskByID = %+v", task)
	}
	if c.TaskByID("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestFilterMaterials(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name    string
		subject Subject
		query   string
		wantIDs []string
	}{
		{"subject and search intersect", SubjectPhysics, "schrodinger", []string{"phys-schrodinger"}},
		{"search is case-insensitive", SubjectPhysics, "SCHRODINGER", []string{"phys-schrodinger"}},
		{"search hits content body", SubjectAll, "bound states", []string{"phys-schrodinger"}},
		{"subject only", SubjectMedicine, "", []string{"med-dose-calc"}},
		{"no match", SubjectMathematics, "schrodinger", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FilterMaterials(tt.subject, tt.query, LangEN)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, m := range got {
				if m.ID != tt.wantIDs[i] {
					t.Errorf("got[%d] = %s, want %s", i, m.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterMaterialsUsesRequestedLanguage(t *testing.T) {
	c := loadTestCatalog(t)

	// "шредингера" appears only in the Russian body text.
	got := c.FilterMaterials(SubjectPhysics, "шредингера", LangRU)
	if len(got) != 1 || got[0].ID != "phys-schrodinger" {
		t.Fatalf("got = %v", got)
	}

	if got := c.FilterMaterials(SubjectPhysics, "шредингера", LangEN); len(got) != 0 {
		t.Errorf("english filter matched russian text: %v", got)
	}
}
