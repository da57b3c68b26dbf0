// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/riskdrill/ent/proficiencyevent"
)

// ProficiencyEvent is the model entity for the ProficiencyEvent schema.
type ProficiencyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Whether the triggering answer passed
	Passed bool `json:"passed,omitempty"`
	// LevelBefore holds the value of the "level_before" field.
	LevelBefore int `json:"level_before,omitempty"`
	// LevelAfter holds the value of the "level_after" field.
	LevelAfter int `json:"level_after,omitempty"`
	// Streak counter after the update
	ConsecutiveCorrect int `json:"consecutive_correct,omitempty"`
	// Streak counter after the update
	ConsecutiveIncorrect int `json:"consecutive_incorrect,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProficiencyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proficiencyevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case proficiencyevent.FieldID, proficiencyevent.FieldSequence, proficiencyevent.FieldLevelBefore, proficiencyevent.FieldLevelAfter, proficiencyevent.FieldConsecutiveCorrect, proficiencyevent.FieldConsecutiveIncorrect:
			values[i] = new(sql.NullInt64)
		case proficiencyevent.FieldUserID, proficiencyevent.FieldTopic:
			values[i] = new(sql.NullString)
		case proficiencyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProficiencyEvent fields.
func (_m *ProficiencyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proficiencyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case proficiencyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case proficiencyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case proficiencyevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case proficiencyevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case proficiencyevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case proficiencyevent.FieldLevelBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_before", values[i])
			} else if value.Valid {
				_m.LevelBefore = int(value.Int64)
			}
		case proficiencyevent.FieldLevelAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_after", values[i])
			} else if value.Valid {
				_m.LevelAfter = int(value.Int64)
			}
		case proficiencyevent.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				_m.ConsecutiveCorrect = int(value.Int64)
			}
		case proficiencyevent.FieldConsecutiveIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_incorrect", values[i])
			} else if value.Valid {
				_m.ConsecutiveIncorrect = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProficiencyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProficiencyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProficiencyEvent.
// Note that you need to call ProficiencyEvent.Unwrap() before calling this method if this ProficiencyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProficiencyEvent) Update() *ProficiencyEventUpdateOne {
	return NewProficiencyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProficiencyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProficiencyEvent) Unwrap() *ProficiencyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProficiencyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProficiencyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProficiencyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("level_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelBefore))
	builder.WriteString(", ")
	builder.WriteString("level_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelAfter))
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("consecutive_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveIncorrect))
	builder.WriteByte(')')
	return builder.String()
}

// ProficiencyEvents is a parsable slice of ProficiencyEvent.
type ProficiencyEvents []*ProficiencyEvent
