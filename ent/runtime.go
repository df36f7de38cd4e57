// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathpal/ent/llmrequestevent"
	"github.com/abhisek/mathpal/ent/quizevent"
	"github.com/abhisek/mathpal/ent/schema"
	"github.com/abhisek/mathpal/ent/solveevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[0].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
	// quizeventDescTotal is the schema descriptor for total field.
	quizeventDescTotal := quizeventFields[1].Descriptor()
	// quizevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizevent.TotalValidator = quizeventDescTotal.Validators[0].(func(int) error)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[2].Descriptor()
	// quizevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizevent.ScoreValidator = quizeventDescScore.Validators[0].(func(int) error)
	// quizeventDescModel is the schema descriptor for model field.
	quizeventDescModel := quizeventFields[3].Descriptor()
	// quizevent.DefaultModel holds the default value on creation for the model field.
	quizevent.DefaultModel = quizeventDescModel.Default.(string)
	solveeventMixin := schema.SolveEvent{}.Mixin()
	solveeventMixinFields0 := solveeventMixin[0].Fields()
	_ = solveeventMixinFields0
	solveeventFields := schema.SolveEvent{}.Fields()
	_ = solveeventFields
	// solveeventDescTimestamp is the schema descriptor for timestamp field.
	solveeventDescTimestamp := solveeventMixinFields0[1].Descriptor()
	// solveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	solveevent.DefaultTimestamp = solveeventDescTimestamp.Default.(func() time.Time)
	// solveeventDescProblem is the schema descriptor for problem field.
	solveeventDescProblem := solveeventFields[0].Descriptor()
	// solveevent.DefaultProblem holds the default value on creation for the problem field.
	solveevent.DefaultProblem = solveeventDescProblem.Default.(string)
	// solveeventDescHasImage is the schema descriptor for has_image field.
	solveeventDescHasImage := solveeventFields[1].Descriptor()
	// solveevent.DefaultHasImage holds the default value on creation for the has_image field.
	solveevent.DefaultHasImage = solveeventDescHasImage.Default.(bool)
	// solveeventDescFinalAnswer is the schema descriptor for final_answer field.
	solveeventDescFinalAnswer := solveeventFields[2].Descriptor()
	// solveevent.DefaultFinalAnswer holds the default value on creation for the final_answer field.
	solveevent.DefaultFinalAnswer = solveeventDescFinalAnswer.Default.(string)
	// solveeventDescStepCount is the schema descriptor for step_count field.
	solveeventDescStepCount := solveeventFields[3].Descriptor()
	// solveevent.DefaultStepCount holds the default value on creation for the step_count field.
	solveevent.DefaultStepCount = solveeventDescStepCount.Default.(int)
	// solveeventDescModel is the schema descriptor for model field.
	solveeventDescModel := solveeventFields[4].Descriptor()
	// solveevent.DefaultModel holds the default value on creation for the model field.
	solveevent.DefaultModel = solveeventDescModel.Default.(string)
}
