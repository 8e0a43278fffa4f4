package diagnosis

// Error type labels produced by the analysis model. Matching against
// these labels is case-insensitive and substring-based, so compound
// labels like "Logical / Computational" count toward both stats.
const (
	ErrorLogical       = "Logical"
	ErrorComputational = "Computational"
	ErrorCarelessness  = "Carelessness"
	ErrorStrategy      = "Wrong Strategy"
	ErrorAttention     = "Attention"
	ErrorUnknown       = "Unknown"

	// OutcomeSuccess and OutcomeNone mean no error was found.
	OutcomeSuccess = "Success"
	OutcomeNone    = "None"
)

// Result is the structured diagnosis of a completed attempt.
type Result struct {
	ErrorType       string `json:"errorType"`
	LogicBreakPoint string `json:"logicBreakPoint"`
	TrapTask        string `json:"trapTask"`
	Advice          string `json:"advice"`

	// Fallback is true when the model could not be reached or returned
	// unusable output and a generic diagnosis was substituted.
	Fallback bool `json:"-"`
}

// IsSuccess reports whether the diagnosis found no error.
func (r *Result) IsSuccess() bool {
	return r.ErrorType == OutcomeSuccess || r.ErrorType == OutcomeNone
}
