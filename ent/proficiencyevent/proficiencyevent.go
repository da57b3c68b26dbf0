// Code generated by ent, DO NOT EDIT.

package proficiencyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proficiencyevent type in the database.
	Label = "proficiency_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldLevelBefore holds the string denoting the level_before field in the database.
	FieldLevelBefore = "level_before"
	// FieldLevelAfter holds the string denoting the level_after field in the database.
	FieldLevelAfter = "level_after"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldConsecutiveIncorrect holds the string denoting the consecutive_incorrect field in the database.
	FieldConsecutiveIncorrect = "consecutive_incorrect"
	// Table holds the table name of the proficiencyevent in the database.
	Table = "proficiency_events"
)

// Columns holds all SQL columns for proficiencyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldTopic,
	FieldPassed,
	FieldLevelBefore,
	FieldLevelAfter,
	FieldConsecutiveCorrect,
	FieldConsecutiveIncorrect,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
)

// OrderOption defines the ordering options for the ProficiencyEvent queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByLevelBefore orders the results by the level_before field.
func ByLevelBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelBefore, opts...).ToFunc()
}

// ByLevelAfter orders the results by the level_after field.
func ByLevelAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelAfter, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByConsecutiveIncorrect orders the results by the consecutive_incorrect field.
func ByConsecutiveIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveIncorrect, opts...).ToFunc()
}
