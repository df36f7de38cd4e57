// Code generated by ent, DO NOT EDIT.

package solveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Problem applies equality check predicate on the "problem" field. It's identical to ProblemEQ.
func Problem(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldProblem, v))
}

// HasImage applies equality check predicate on the "has_image" field. It's identical to HasImageEQ.
func HasImage(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldHasImage, v))
}

// FinalAnswer applies equality check predicate on the "final_answer" field. It's identical to FinalAnswerEQ.
func FinalAnswer(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldFinalAnswer, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldStepCount, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldModel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProblemEQ applies the EQ predicate on the "problem" field.
func ProblemEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldProblem, v))
}

// ProblemNEQ applies the NEQ predicate on the "problem" field.
func ProblemNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldProblem, v))
}

// ProblemIn applies the In predicate on the "problem" field.
func ProblemIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldProblem, vs...))
}

// ProblemNotIn applies the NotIn predicate on the "problem" field.
func ProblemNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldProblem, vs...))
}

// ProblemGT applies the GT predicate on the "problem" field.
func ProblemGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldProblem, v))
}

// ProblemGTE applies the GTE predicate on the "problem" field.
func ProblemGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldProblem, v))
}

// ProblemLT applies the LT predicate on the "problem" field.
func ProblemLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldProblem, v))
}

// ProblemLTE applies the LTE predicate on the "problem" field.
func ProblemLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldProblem, v))
}

// ProblemContains applies the Contains predicate on the "problem" field.
func ProblemContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldProblem, v))
}

// ProblemHasPrefix applies the HasPrefix predicate on the "problem" field.
func ProblemHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldProblem, v))
}

// ProblemHasSuffix applies the HasSuffix predicate on the "problem" field.
func ProblemHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldProblem, v))
}

// ProblemEqualFold applies the EqualFold predicate on the "problem" field.
func ProblemEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldProblem, v))
}

// ProblemContainsFold applies the ContainsFold predicate on the "problem" field.
func ProblemContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldProblem, v))
}

// HasImageEQ applies the EQ predicate on the "has_image" field.
func HasImageEQ(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldHasImage, v))
}

// HasImageNEQ applies the NEQ predicate on the "has_image" field.
func HasImageNEQ(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldHasImage, v))
}

// FinalAnswerEQ applies the EQ predicate on the "final_answer" field.
func FinalAnswerEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldFinalAnswer, v))
}

// FinalAnswerNEQ applies the NEQ predicate on the "final_answer" field.
func FinalAnswerNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldFinalAnswer, v))
}

// FinalAnswerIn applies the In predicate on the "final_answer" field.
func FinalAnswerIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldFinalAnswer, vs...))
}

// FinalAnswerNotIn applies the NotIn predicate on the "final_answer" field.
func FinalAnswerNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldFinalAnswer, vs...))
}

// FinalAnswerGT applies the GT predicate on the "final_answer" field.
func FinalAnswerGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldFinalAnswer, v))
}

// FinalAnswerGTE applies the GTE predicate on the "final_answer" field.
func FinalAnswerGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldFinalAnswer, v))
}

// FinalAnswerLT applies the LT predicate on the "final_answer" field.
func FinalAnswerLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldFinalAnswer, v))
}

// FinalAnswerLTE applies the LTE predicate on the "final_answer" field.
func FinalAnswerLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldFinalAnswer, v))
}

// FinalAnswerContains applies the Contains predicate on the "final_answer" field.
func FinalAnswerContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldFinalAnswer, v))
}

// FinalAnswerHasPrefix applies the HasPrefix predicate on the "final_answer" field.
func FinalAnswerHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldFinalAnswer, v))
}

// FinalAnswerHasSuffix applies the HasSuffix predicate on the "final_answer" field.
func FinalAnswerHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldFinalAnswer, v))
}

// FinalAnswerEqualFold applies the EqualFold predicate on the "final_answer" field.
func FinalAnswerEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldFinalAnswer, v))
}

// FinalAnswerContainsFold applies the ContainsFold predicate on the "final_answer" field.
func FinalAnswerContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldFinalAnswer, v))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldStepCount, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldModel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.NotPredicates(p))
}
