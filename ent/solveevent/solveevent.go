// Code generated by ent, DO NOT EDIT.

package solveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the solveevent type in the database.
	Label = "solve_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProblem holds the string denoting the problem field in the database.
	FieldProblem = "problem"
	// FieldHasImage holds the string denoting the has_image field in the database.
	FieldHasImage = "has_image"
	// FieldFinalAnswer holds the string denoting the final_answer field in the database.
	FieldFinalAnswer = "final_answer"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// Table holds the table name of the solveevent in the database.
	Table = "solve_events"
)

// Columns holds all SQL columns for solveevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProblem,
	FieldHasImage,
	FieldFinalAnswer,
	FieldStepCount,
	FieldModel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultProblem holds the default value on creation for the "problem" field.
	DefaultProblem string
	// DefaultHasImage holds the default value on creation for the "has_image" field.
	DefaultHasImage bool
	// DefaultFinalAnswer holds the default value on creation for the "final_answer" field.
	DefaultFinalAnswer string
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
)

// OrderOption defines the ordering options for the SolveEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProblem orders the results by the problem field.
func ByProblem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblem, opts...).ToFunc()
}

// ByHasImage orders the results by the has_image field.
func ByHasImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImage, opts...).ToFunc()
}

// ByFinalAnswer orders the results by the final_answer field.
func ByFinalAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnswer, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}
