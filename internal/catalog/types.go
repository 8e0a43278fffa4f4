package catalog

// Language is a UI/content language code.
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
	LangKK Language = "kk"
)

// Languages lists all supported content languages.
var Languages = []Language{LangEN, LangRU, LangKK}

// Level is an academic tier.
type Level string

const (
	LevelAll        Level = "All"
	LevelSchool     Level = "School"
	LevelBachelor   Level = "Bachelor"
	LevelMaster     Level = "Master"
	LevelProfessor  Level = "Professor"
	LevelSpecialist Level = "Specialist"
	LevelExpert     Level = "Expert"
)

// SelectableLevels are the tiers offered in the training level filter.
var SelectableLevels = []Level{
	LevelAll, LevelSchool, LevelBachelor, LevelMaster,
	LevelProfessor, LevelSpecialist, LevelExpert,
}

// Subject is an academic field.
type Subject string

const (
	SubjectAll         Subject = "All"
	SubjectMathematics Subject = "Mathematics"
	SubjectPhysics     Subject = "Physics"
	SubjectChemistry   Subject = "Chemistry"
	SubjectBiology     Subject = "Biology"
	SubjectMedicine    Subject = "Medicine"
	SubjectEngineering Subject = "Engineering"
	SubjectCS          Subject = "Computer Science"
)

// FilterSubjects are the subjects offered in the materials filter.
var FilterSubjects = []Subject{
	SubjectMathematics, SubjectPhysics, SubjectChemistry,
	SubjectBiology, SubjectMedicine, SubjectEngineering, SubjectCS,
}

// InteractionKind selects how a task is answered.
type InteractionKind string

const (
	KindTextStep     InteractionKind = "TextStep"
	KindSpotTheError InteractionKind = "SpotTheError"
	KindSequence     InteractionKind = "Sequence"
)

// Difficulty grades a task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// TaskContent is the per-language text of a task.
type TaskContent struct {
	Question string `yaml:"question"`
	Solution string `yaml:"solution"`
	Hint     string `yaml:"hint"`
}

// Hotspot is a clickable region for SpotTheError tasks.
type Hotspot struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// SequenceItem is one orderable element of a Sequence task.
type SequenceItem struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
}

// VisualMeta carries optional non-textual task data.
type VisualMeta struct {
	AssetDescription string         `yaml:"asset_description,omitempty"`
	Hotspots         []Hotspot      `yaml:"hotspots,omitempty"`
	SequenceItems    []SequenceItem `yaml:"sequence_items,omitempty"`
}

// Task is an immutable task definition. English content is canonical for
// prompting; other languages are for display only.
type Task struct {
	ID         string                   `yaml:"id"`
	Level      Level                    `yaml:"level"`
	Subject    Subject                  `yaml:"subject"`
	Topic      string                   `yaml:"topic"`
	Kind       InteractionKind          `yaml:"kind"`
	Grade      int                      `yaml:"grade,omitempty"`
	Difficulty Difficulty               `yaml:"difficulty"`
	Content    map[Language]TaskContent `yaml:"content"`
	Visual     *VisualMeta              `yaml:"visual,omitempty"`
}

// Text returns the task content in lang, falling back to English.
func (t Task) Text(lang Language) TaskContent {
	if c, ok := t.Content[lang]; ok {
		return c
	}
	return t.Content[LangEN]
}

// MaterialCategory classifies a reference material.
type MaterialCategory string

const (
	CategoryFormulas  MaterialCategory = "Formulas"
	CategoryProtocols MaterialCategory = "Protocols"
	CategoryMedical   MaterialCategory = "Medical"
	CategoryCharts    MaterialCategory = "Charts"
)

// CalcVariable is one numeric input of a material's interactive solver.
// A Fixed variable is a physical constant: shown, never editable.
type CalcVariable struct {
	ID    string   `yaml:"id"`
	Label string   `yaml:"label"`
	Unit  string   `yaml:"unit"`
	Fixed *float64 `yaml:"fixed,omitempty"`
}

// Calculator configures a material's interactive solver. Formula names
// a computation in the formula registry.
type Calculator struct {
	Formula   string         `yaml:"formula"`
	Variables []CalcVariable `yaml:"variables"`
}

// Material is an immutable reference-library entry.
type Material struct {
	ID         string              `yaml:"id"`
	Subject    Subject             `yaml:"subject"`
	Level      string              `yaml:"level"`
	Category   MaterialCategory    `yaml:"category"`
	Title      map[Language]string `yaml:"title"`
	Content    map[Language]string `yaml:"content"`
	Calculator *Calculator         `yaml:"calculator,omitempty"`
}

// TitleIn returns the material title in lang, falling back to English.
func (m Material) TitleIn(lang Language) string {
	if s, ok := m.Title[lang]; ok && s != "" {
		return s
	}
	return m.Title[LangEN]
}

// ContentIn returns the material body in lang, falling back to English.
func (m Material) ContentIn(lang Language) string {
	if s, ok := m.Content[lang]; ok && s != "" {
		return s
	}
	return m.Content[LangEN]
}
