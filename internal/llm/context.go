package llm

import "context"

// Purpose labels classify model traffic in the persisted event log.
// The diagnosis evaluator tags its calls "error-analysis"; calls made
// without a label are logged under "unknown".

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose returns a context whose model calls log under label.
func WithPurpose(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, purposeKey, label)
}

// PurposeFrom returns the purpose label carried by ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if label, ok := ctx.Value(purposeKey).(string); ok && label != "" {
		return label
	}
	return "unknown"
}
