// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/errormind/ent/attemptevent"
	"github.com/abhisek/errormind/ent/llmrequestevent"
	"github.com/abhisek/errormind/ent/note"
	"github.com/abhisek/errormind/ent/schema"
	"github.com/abhisek/errormind/ent/setting"
	"github.com/abhisek/errormind/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescTaskID is the schema descriptor for task_id field.
	attempteventDescTaskID := attempteventFields[1].Descriptor()
	// attemptevent.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	attemptevent.TaskIDValidator = attempteventDescTaskID.Validators[0].(func(string) error)
	// attempteventDescErrorType is the schema descriptor for error_type field.
	attempteventDescErrorType := attempteventFields[2].Descriptor()
	// attemptevent.ErrorTypeValidator is a validator for the "error_type" field. It is called by the builders before save.
	attemptevent.ErrorTypeValidator = attempteventDescErrorType.Validators[0].(func(string) error)
	// attempteventDescLogicBreakPoint is the schema descriptor for logic_break_point field.
	attempteventDescLogicBreakPoint := attempteventFields[3].Descriptor()
	// attemptevent.DefaultLogicBreakPoint holds the default value on creation for the logic_break_point field.
	attemptevent.DefaultLogicBreakPoint = attempteventDescLogicBreakPoint.Default.(string)
	// attempteventDescTrapTask is the schema descriptor for trap_task field.
	attempteventDescTrapTask := attempteventFields[4].Descriptor()
	// attemptevent.DefaultTrapTask holds the default value on creation for the trap_task field.
	attemptevent.DefaultTrapTask = attempteventDescTrapTask.Default.(string)
	// attempteventDescAdvice is the schema descriptor for advice field.
	attempteventDescAdvice := attempteventFields[5].Descriptor()
	// attemptevent.DefaultAdvice holds the default value on creation for the advice field.
	attemptevent.DefaultAdvice = attempteventDescAdvice.Default.(string)
	// attempteventDescStepCount is the schema descriptor for step_count field.
	attempteventDescStepCount := attempteventFields[6].Descriptor()
	// attemptevent.DefaultStepCount holds the default value on creation for the step_count field.
	attemptevent.DefaultStepCount = attempteventDescStepCount.Default.(int)
	// attempteventDescTotalMs is the schema descriptor for total_ms field.
	attempteventDescTotalMs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultTotalMs holds the default value on creation for the total_ms field.
	attemptevent.DefaultTotalMs = attempteventDescTotalMs.Default.(int64)
	// attempteventDescFallback is the schema descriptor for fallback field.
	attempteventDescFallback := attempteventFields[8].Descriptor()
	// attemptevent.DefaultFallback holds the default value on creation for the fallback field.
	attemptevent.DefaultFallback = attempteventDescFallback.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescUserID is the schema descriptor for user_id field.
	noteDescUserID := noteFields[1].Descriptor()
	// note.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	note.UserIDValidator = noteDescUserID.Validators[0].(func(string) error)
	// noteDescText is the schema descriptor for text field.
	noteDescText := noteFields[2].Descriptor()
	// note.TextValidator is a validator for the "text" field. It is called by the builders before save.
	note.TextValidator = noteDescText.Validators[0].(func(string) error)
	// noteDescFolder is the schema descriptor for folder field.
	noteDescFolder := noteFields[3].Descriptor()
	// note.DefaultFolder holds the default value on creation for the folder field.
	note.DefaultFolder = noteDescFolder.Default.(string)
	// noteDescCapturedAt is the schema descriptor for captured_at field.
	noteDescCapturedAt := noteFields[4].Descriptor()
	// note.DefaultCapturedAt holds the default value on creation for the captured_at field.
	note.DefaultCapturedAt = noteDescCapturedAt.Default.(func() time.Time)
	// noteDescID is the schema descriptor for id field.
	noteDescID := noteFields[0].Descriptor()
	// note.IDValidator is a validator for the "id" field. It is called by the builders before save.
	note.IDValidator = noteDescID.Validators[0].(func(string) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.DefaultValue holds the default value on creation for the value field.
	setting.DefaultValue = settingDescValue.Default.(string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescLogical is the schema descriptor for logical field.
	userDescLogical := userFields[4].Descriptor()
	// user.DefaultLogical holds the default value on creation for the logical field.
	user.DefaultLogical = userDescLogical.Default.(int)
	// userDescComputational is the schema descriptor for computational field.
	userDescComputational := userFields[5].Descriptor()
	// user.DefaultComputational holds the default value on creation for the computational field.
	user.DefaultComputational = userDescComputational.Default.(int)
	// userDescCarelessness is the schema descriptor for carelessness field.
	userDescCarelessness := userFields[6].Descriptor()
	// user.DefaultCarelessness holds the default value on creation for the carelessness field.
	user.DefaultCarelessness = userDescCarelessness.Default.(int)
	// userDescStrategy is the schema descriptor for strategy field.
	userDescStrategy := userFields[7].Descriptor()
	// user.DefaultStrategy holds the default value on creation for the strategy field.
	user.DefaultStrategy = userDescStrategy.Default.(int)
	// userDescAttention is the schema descriptor for attention field.
	userDescAttention := userFields[8].Descriptor()
	// user.DefaultAttention holds the default value on creation for the attention field.
	user.DefaultAttention = userDescAttention.Default.(int)
	// userDescPlacementCompleted is the schema descriptor for placement_completed field.
	userDescPlacementCompleted := userFields[11].Descriptor()
	// user.DefaultPlacementCompleted holds the default value on creation for the placement_completed field.
	user.DefaultPlacementCompleted = userDescPlacementCompleted.Default.(bool)
	// userDescAssignedLevel is the schema descriptor for assigned_level field.
	userDescAssignedLevel := userFields[12].Descriptor()
	// user.DefaultAssignedLevel holds the default value on creation for the assigned_level field.
	user.DefaultAssignedLevel = userDescAssignedLevel.Default.(string)
	// userDescAssignedGrade is the schema descriptor for assigned_grade field.
	userDescAssignedGrade := userFields[13].Descriptor()
	// user.DefaultAssignedGrade holds the default value on creation for the assigned_grade field.
	user.DefaultAssignedGrade = userDescAssignedGrade.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[14].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
}
