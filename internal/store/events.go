package store

import (
	"context"
	"fmt"

	"github.com/abhisek/errormind/ent"
	"github.com/abhisek/errormind/ent/attemptevent"
	"github.com/abhisek/errormind/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetTaskID(data.TaskID).
		SetErrorType(data.ErrorType).
		SetLogicBreakPoint(data.LogicBreakPoint).
		SetTrapTask(data.TrapTask).
		SetAdvice(data.Advice).
		SetStepCount(data.StepCount).
		SetTotalMs(data.TotalMs).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context, userID string, opts QueryOpts) ([]*AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	out := make([]*AttemptRecord, len(rows))
	for i, row := range rows {
		out[i] = &AttemptRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AttemptEventData: AttemptEventData{
				UserID:          row.UserID,
				TaskID:          row.TaskID,
				ErrorType:       row.ErrorType,
				LogicBreakPoint: row.LogicBreakPoint,
				TrapTask:        row.TrapTask,
				Advice:          row.Advice,
				StepCount:       row.StepCount,
				TotalMs:         row.TotalMs,
				Fallback:        row.Fallback,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]*LLMEvent, len(rows))
	for i, row := range rows {
		out[i] = entLLMEventToLLMEvent(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return entLLMEventToLLMEvent(row), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"count"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}

	out := make([]LLMUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		}
	}
	return out, nil
}

func entLLMEventToLLMEvent(row *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
