package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/errormind/internal/attempt"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/llm"
)

func testTask() catalog.Task {
	return catalog.Task{
		ID:      "k12-math-01",
		Level:   catalog.LevelSchool,
		Subject: catalog.SubjectMathematics,
		Topic:   "Quadratic Equations",
		Kind:    catalog.KindTextStep,
		Content: map[catalog.Language]catalog.TaskContent{
			catalog.LangEN: {
				Question: "Solve x^2 - 5x + 6 = 0",
				Solution: "Factor into (x-2)(x-3)=0, so x=2 or x=3",
			},
		},
	}
}

func testSteps() []attempt.Step {
	return []attempt.Step{
		{Content: "x^2 - 5x + 6 = 0", Duration: 1500 * time.Millisecond},
		{Content: "(x-1)(x-6) = 0", Duration: 4200 * time.Millisecond},
		{Content: "x = 1 or x = 6", Duration: 900 * time.Millisecond},
	}
}

func TestEvaluate_ParsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"errorType": "Computational",
			"logicBreakPoint": "Factoring produced the wrong pair of roots.",
			"trapTask": "Factoring quadratics",
			"advice": "Check that the factors multiply back to the original expression."
		}`),
	})
	e := NewEvaluator(mock, DefaultEvaluatorConfig())

	result := e.Evaluate(context.Background(), testTask(), testSteps(), 7*time.Second)

	if result.ErrorType != "Computational" {
		t.Fatalf("expected Computational, got %q", result.ErrorType)
	}
	if result.TrapTask != "Factoring quadratics" {
		t.Fatalf("unexpected trap task: %q", result.TrapTask)
	}
	if result.Fallback {
		t.Fatal("expected Fallback to be false")
	}
}

func TestEvaluate_PromptIncludesStepsAndTiming(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"errorType":"Success","logicBreakPoint":"-","trapTask":"-","advice":"-"}`),
	})
	e := NewEvaluator(mock, DefaultEvaluatorConfig())

	e.Evaluate(context.Background(), testTask(), testSteps(), 6600*time.Millisecond)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content

	for _, want := range []string{
		"Step 1 (Reflected for 1500ms): x^2 - 5x + 6 = 0",
		"Step 2 (Reflected for 4200ms): (x-1)(x-6) = 0",
		"Step 3 (Reflected for 900ms): x = 1 or x = 6",
		"TOPIC: Quadratic Equations",
		"QUESTION: Solve x^2 - 5x + 6 = 0",
		"TOTAL SESSION TIME: 6600ms",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, msg)
		}
	}

	if mock.Calls[0].Schema != ResultSchema {
		t.Error("expected analysis schema to be attached to the request")
	}
}

func TestEvaluate_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrUnavailable{Err: errors.New("down")},
	})
	e := NewEvaluator(mock, DefaultEvaluatorConfig())

	task := testTask()
	result := e.Evaluate(context.Background(), task, testSteps(), time.Second)

	if !result.Fallback {
		t.Fatal("expected fallback result")
	}
	if result.ErrorType != ErrorUnknown {
		t.Fatalf("expected Unknown, got %q", result.ErrorType)
	}
	if result.TrapTask != task.Topic {
		t.Fatalf("expected trap task %q, got %q", task.Topic, result.TrapTask)
	}
}

func TestEvaluate_FallbackOnUnparseableJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	e := NewEvaluator(mock, DefaultEvaluatorConfig())

	result := e.Evaluate(context.Background(), testTask(), testSteps(), time.Second)

	if !result.Fallback {
		t.Fatal("expected fallback result")
	}
	if result.ErrorType != ErrorUnknown {
		t.Fatalf("expected Unknown, got %q", result.ErrorType)
	}
}

func TestEvaluate_FallbackOnEmptyErrorType(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"errorType":"","logicBreakPoint":"x","trapTask":"y","advice":"z"}`),
	})
	e := NewEvaluator(mock, DefaultEvaluatorConfig())

	result := e.Evaluate(context.Background(), testTask(), testSteps(), time.Second)

	if !result.Fallback {
		t.Fatal("expected fallback result")
	}
}

func TestResult_IsSuccess(t *testing.T) {
	tests := []struct {
		errorType string
		want      bool
	}{
		{OutcomeSuccess, true},
		{OutcomeNone, true},
		{ErrorLogical, false},
		{ErrorUnknown, false},
	}
	for _, tt := range tests {
		r := &Result{ErrorType: tt.errorType}
		if got := r.IsSuccess(); got != tt.want {
			t.Errorf("IsSuccess(%q) = %v, want %v", tt.errorType, got, tt.want)
		}
	}
}
