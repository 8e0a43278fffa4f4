package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/abhisek/errormind/internal/attempt"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/llm"
)

// EvaluatorConfig holds configuration for the attempt evaluator.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns sensible defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Evaluator analyzes a finished attempt with the model and classifies
// the underlying error.
type Evaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewEvaluator creates an attempt evaluator.
func NewEvaluator(provider llm.Provider, cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate sends the recorded steps to the model and returns a Result.
// It never returns an error: when the model is unreachable or its
// output cannot be parsed, a generic fallback diagnosis is returned so
// the attempt flow always completes.
func (e *Evaluator) Evaluate(ctx context.Context, task catalog.Task, steps []attempt.Step, total time.Duration) *Result {
	ctx = llm.WithPurpose(ctx, "error-analysis")

	userMsg, err := buildAnalysisMessage(task, steps, total)
	if err != nil {
		return FallbackResult(task)
	}

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ResultSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return FallbackResult(task)
	}

	var result Result
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return FallbackResult(task)
	}
	if strings.TrimSpace(result.ErrorType) == "" {
		return FallbackResult(task)
	}

	return &result
}

// FallbackResult is the generic diagnosis used when analysis fails or
// no model provider is configured.
func FallbackResult(task catalog.Task) *Result {
	return &Result{
		ErrorType:       ErrorUnknown,
		LogicBreakPoint: "High complexity detected. Could not determine exact point.",
		TrapTask:        task.Topic,
		Advice:          "Consult specialized materials or review fundamental principles of this topic.",
		Fallback:        true,
	}
}

const analysisSystemPrompt = `You are an expert diagnostician of professional and academic reasoning. A learner worked through a task step by step; each step carries the time spent before it was entered.

CRITICAL ANALYSIS:
1. Check for conceptual misunderstandings vs. simple calculation errors.
2. Analyze timing:
   - < 2s on complex steps suggest a 'guessing' or 'carelessness' behavior.
   - > 15s on simple steps suggest 'bottlenecks' in basic theory retrieval.
3. For Specialist/Professor levels, look for 'Logic Flow' and 'Heuristic gaps'.
4. If the reasoning reaches the expected result without flaws, report errorType "Success".`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Analyze this thought process for {{.Subject}} ({{.Level}}).

TOPIC: {{.Topic}}
QUESTION: {{.Question}}
EXPECTED PATH: {{.Solution}}

STUDENT INPUT STEPS:
{{.Steps}}

TOTAL SESSION TIME: {{.TotalMs}}ms`))

type analysisPromptData struct {
	Subject  catalog.Subject
	Level    catalog.Level
	Topic    string
	Question string
	Solution string
	Steps    string
	TotalMs  int64
}

func buildAnalysisMessage(task catalog.Task, steps []attempt.Step, total time.Duration) (string, error) {
	content := task.Text(catalog.LangEN)

	var sb strings.Builder
	for i, s := range steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Step %d (Reflected for %dms): %s", i+1, s.Duration.Milliseconds(), s.Content)
	}

	data := analysisPromptData{
		Subject:  task.Subject,
		Level:    task.Level,
		Topic:    task.Topic,
		Question: content.Question,
		Solution: content.Solution,
		Steps:    sb.String(),
		TotalMs:  total.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
