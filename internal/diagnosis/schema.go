package diagnosis

import "github.com/abhisek/errormind/internal/llm"

// ResultSchema defines the JSON schema for attempt analysis responses.
var ResultSchema = &llm.Schema{
	Name:        "attempt-analysis",
	Description: "Diagnosis of a step-by-step reasoning attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"errorType": map[string]any{
				"type":        "string",
				"description": "One of: Carelessness, Wrong Strategy, Logical, Computational, Attention, Success, None",
			},
			"logicBreakPoint": map[string]any{
				"type":        "string",
				"description": "Detailed description of where the reasoning broke down",
			},
			"trapTask": map[string]any{
				"type":        "string",
				"description": "Specific sub-topic the learner should focus on",
			},
			"advice": map[string]any{
				"type":        "string",
				"description": "Encouraging, high-level advice for a professional or student",
			},
		},
		"required":             []any{"errorType", "logicBreakPoint", "trapTask", "advice"},
		"additionalProperties": false,
	},
}
