// Code generated by ent, DO NOT EDIT.

package proficiencyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTopic, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldPassed, v))
}

// LevelBefore applies equality check predicate on the "level_before" field. It's identical to LevelBeforeEQ.
func LevelBefore(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldLevelBefore, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveIncorrect applies equality check predicate on the "consecutive_incorrect" field. It's identical to ConsecutiveIncorrectEQ.
func ConsecutiveIncorrect(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldConsecutiveIncorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContainsFold(FieldTopic, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldPassed, v))
}

// LevelBeforeEQ applies the EQ predicate on the "level_before" field.
func LevelBeforeEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldLevelBefore, v))
}

// LevelBeforeNEQ applies the NEQ predicate on the "level_before" field.
func LevelBeforeNEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldLevelBefore, v))
}

// LevelBeforeIn applies the In predicate on the "level_before" field.
func LevelBeforeIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldLevelBefore, vs...))
}

// LevelBeforeNotIn applies the NotIn predicate on the "level_before" field.
func LevelBeforeNotIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldLevelBefore, vs...))
}

// LevelBeforeGT applies the GT predicate on the "level_before" field.
func LevelBeforeGT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldLevelBefore, v))
}

// LevelBeforeGTE applies the GTE predicate on the "level_before" field.
func LevelBeforeGTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldLevelBefore, v))
}

// LevelBeforeLT applies the LT predicate on the "level_before" field.
func LevelBeforeLT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldLevelBefore, v))
}

// LevelBeforeLTE applies the LTE predicate on the "level_before" field.
func LevelBeforeLTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldLevelBefore, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveIncorrectEQ applies the EQ predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldConsecutiveIncorrect, v))
}

// ConsecutiveIncorrectNEQ applies the NEQ predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectNEQ(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldConsecutiveIncorrect, v))
}

// ConsecutiveIncorrectIn applies the In predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldConsecutiveIncorrect, vs...))
}

// ConsecutiveIncorrectNotIn applies the NotIn predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectNotIn(vs ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldConsecutiveIncorrect, vs...))
}

// ConsecutiveIncorrectGT applies the GT predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectGT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldConsecutiveIncorrect, v))
}

// ConsecutiveIncorrectGTE applies the GTE predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectGTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldConsecutiveIncorrect, v))
}

// ConsecutiveIncorrectLT applies the LT predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectLT(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldConsecutiveIncorrect, v))
}

// ConsecutiveIncorrectLTE applies the LTE predicate on the "consecutive_incorrect" field.
func ConsecutiveIncorrectLTE(v int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldConsecutiveIncorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.NotPredicates(p))
}
