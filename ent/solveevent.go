// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpal/ent/solveevent"
)

// SolveEvent is the model entity for the SolveEvent schema.
type SolveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// The problem as typed; empty for image-only solves
	Problem string `json:"problem,omitempty"`
	// Whether a problem photo was attached
	HasImage bool `json:"has_image,omitempty"`
	// The final answer returned
	FinalAnswer string `json:"final_answer,omitempty"`
	// Number of solution steps returned
	StepCount int `json:"step_count,omitempty"`
	// Model that produced the solution
	Model        string `json:"model,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldHasImage:
			values[i] = new(sql.NullBool)
		case solveevent.FieldID, solveevent.FieldSequence, solveevent.FieldStepCount:
			values[i] = new(sql.NullInt64)
		case solveevent.FieldProblem, solveevent.FieldFinalAnswer, solveevent.FieldModel:
			values[i] = new(sql.NullString)
		case solveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolveEvent fields.
func (_m *SolveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case solveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case solveevent.FieldProblem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem", values[i])
			} else if value.Valid {
				_m.Problem = value.String
			}
		case solveevent.FieldHasImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_image", values[i])
			} else if value.Valid {
				_m.HasImage = value.Bool
			}
		case solveevent.FieldFinalAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_answer", values[i])
			} else if value.Valid {
				_m.FinalAnswer = value.String
			}
		case solveevent.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case solveevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SolveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SolveEvent.
// Note that you need to call SolveEvent.Unwrap() before calling this method if this SolveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolveEvent) Update() *SolveEventUpdateOne {
	return NewSolveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolveEvent) Unwrap() *SolveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SolveEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("problem=")
	builder.WriteString(_m.Problem)
	builder.WriteString(", ")
	builder.WriteString("has_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasImage))
	builder.WriteString(", ")
	builder.WriteString("final_answer=")
	builder.WriteString(_m.FinalAnswer)
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteByte(')')
	return builder.String()
}

// SolveEvents is a parsable slice of SolveEvent.
type SolveEvents []*SolveEvent
