// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/riskdrill/ent/answerevent"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
	"github.com/abhisek/riskdrill/ent/llmrequestevent"
	"github.com/abhisek/riskdrill/ent/proficiencyevent"
	"github.com/abhisek/riskdrill/ent/schema"
	"github.com/abhisek/riskdrill/ent/sessionevent"
	"github.com/abhisek/riskdrill/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[4].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescReferenceAnswer is the schema descriptor for reference_answer field.
	answereventDescReferenceAnswer := answereventFields[5].Descriptor()
	// answerevent.ReferenceAnswerValidator is a validator for the "reference_answer" field. It is called by the builders before save.
	answerevent.ReferenceAnswerValidator = answereventDescReferenceAnswer.Validators[0].(func(string) error)
	// answereventDescUserAnswer is the schema descriptor for user_answer field.
	answereventDescUserAnswer := answereventFields[6].Descriptor()
	// answerevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	answerevent.UserAnswerValidator = answereventDescUserAnswer.Validators[0].(func(string) error)
	// answereventDescRationale is the schema descriptor for rationale field.
	answereventDescRationale := answereventFields[9].Descriptor()
	// answerevent.DefaultRationale holds the default value on creation for the rationale field.
	answerevent.DefaultRationale = answereventDescRationale.Default.(string)
	corpusbuildeventMixin := schema.CorpusBuildEvent{}.Mixin()
	corpusbuildeventMixinFields0 := corpusbuildeventMixin[0].Fields()
	_ = corpusbuildeventMixinFields0
	corpusbuildeventFields := schema.CorpusBuildEvent{}.Fields()
	_ = corpusbuildeventFields
	// corpusbuildeventDescTimestamp is the schema descriptor for timestamp field.
	corpusbuildeventDescTimestamp := corpusbuildeventMixinFields0[1].Descriptor()
	// corpusbuildevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	corpusbuildevent.DefaultTimestamp = corpusbuildeventDescTimestamp.Default.(func() time.Time)
	// corpusbuildeventDescSource is the schema descriptor for source field.
	corpusbuildeventDescSource := corpusbuildeventFields[1].Descriptor()
	// corpusbuildevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	corpusbuildevent.SourceValidator = corpusbuildeventDescSource.Validators[0].(func(string) error)
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
	proficiencyeventMixin := schema.ProficiencyEvent{}.Mixin()
	proficiencyeventMixinFields0 := proficiencyeventMixin[0].Fields()
	_ = proficiencyeventMixinFields0
	proficiencyeventFields := schema.ProficiencyEvent{}.Fields()
	_ = proficiencyeventFields
	// proficiencyeventDescTimestamp is the schema descriptor for timestamp field.
	proficiencyeventDescTimestamp := proficiencyeventMixinFields0[1].Descriptor()
	// proficiencyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	proficiencyevent.DefaultTimestamp = proficiencyeventDescTimestamp.Default.(func() time.Time)
	// proficiencyeventDescUserID is the schema descriptor for user_id field.
	proficiencyeventDescUserID := proficiencyeventFields[0].Descriptor()
	// proficiencyevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	proficiencyevent.UserIDValidator = proficiencyeventDescUserID.Validators[0].(func(string) error)
	// proficiencyeventDescTopic is the schema descriptor for topic field.
	proficiencyeventDescTopic := proficiencyeventFields[1].Descriptor()
	// proficiencyevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	proficiencyevent.TopicValidator = proficiencyeventDescTopic.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[3].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSuccessRate is the schema descriptor for success_rate field.
	sessioneventDescSuccessRate := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSuccessRate holds the default value on creation for the success_rate field.
	sessionevent.DefaultSuccessRate = sessioneventDescSuccessRate.Default.(float64)
	// sessioneventDescPassed is the schema descriptor for passed field.
	sessioneventDescPassed := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPassed holds the default value on creation for the passed field.
	sessionevent.DefaultPassed = sessioneventDescPassed.Default.(bool)
	// sessioneventDescFinalDifficulty is the schema descriptor for final_difficulty field.
	sessioneventDescFinalDifficulty := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultFinalDifficulty holds the default value on creation for the final_difficulty field.
	sessionevent.DefaultFinalDifficulty = sessioneventDescFinalDifficulty.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
