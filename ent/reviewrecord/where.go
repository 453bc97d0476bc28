// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/revisa-app/revisa/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUserID, v))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCardID, v))
}

// ContestID applies equality check predicate on the "contest_id" field. It's identical to ContestIDEQ.
func ContestID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldContestID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldSubtopicID, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitions, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// NextDueAt applies equality check predicate on the "next_due_at" field. It's identical to NextDueAtEQ.
func NextDueAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextDueAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldStatus, v))
}

// CorrectStreak applies equality check predicate on the "correct_streak" field. It's identical to CorrectStreakEQ.
func CorrectStreak(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCorrectStreak, v))
}

// IncorrectStreak applies equality check predicate on the "incorrect_streak" field. It's identical to IncorrectStreakEQ.
func IncorrectStreak(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIncorrectStreak, v))
}

// TotalCorrect applies equality check predicate on the "total_correct" field. It's identical to TotalCorrectEQ.
func TotalCorrect(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalIncorrect applies equality check predicate on the "total_incorrect" field. It's identical to TotalIncorrectEQ.
func TotalIncorrect(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldTotalIncorrect, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldUserID, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldCardID, v))
}

// ContestIDEQ applies the EQ predicate on the "contest_id" field.
func ContestIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldContestID, v))
}

// ContestIDNEQ applies the NEQ predicate on the "contest_id" field.
func ContestIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldContestID, v))
}

// ContestIDIn applies the In predicate on the "contest_id" field.
func ContestIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldContestID, vs...))
}

// ContestIDNotIn applies the NotIn predicate on the "contest_id" field.
func ContestIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldContestID, vs...))
}

// ContestIDGT applies the GT predicate on the "contest_id" field.
func ContestIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldContestID, v))
}

// ContestIDGTE applies the GTE predicate on the "contest_id" field.
func ContestIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldContestID, v))
}

// ContestIDLT applies the LT predicate on the "contest_id" field.
func ContestIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldContestID, v))
}

// ContestIDLTE applies the LTE predicate on the "contest_id" field.
func ContestIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldContestID, v))
}

// ContestIDContains applies the Contains predicate on the "contest_id" field.
func ContestIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldContestID, v))
}

// ContestIDHasPrefix applies the HasPrefix predicate on the "contest_id" field.
func ContestIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldContestID, v))
}

// ContestIDHasSuffix applies the HasSuffix predicate on the "contest_id" field.
func ContestIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldContestID, v))
}

// ContestIDEqualFold applies the EqualFold predicate on the "contest_id" field.
func ContestIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldContestID, v))
}

// ContestIDContainsFold applies the ContainsFold predicate on the "contest_id" field.
func ContestIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldContestID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldSubtopicID, v))
}

// SubtopicIDContains applies the Contains predicate on the "subtopic_id" field.
func SubtopicIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldSubtopicID, v))
}

// SubtopicIDHasPrefix applies the HasPrefix predicate on the "subtopic_id" field.
func SubtopicIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldSubtopicID, v))
}

// SubtopicIDHasSuffix applies the HasSuffix predicate on the "subtopic_id" field.
func SubtopicIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldSubtopicID, v))
}

// SubtopicIDEqualFold applies the EqualFold predicate on the "subtopic_id" field.
func SubtopicIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldSubtopicID, v))
}

// SubtopicIDContainsFold applies the ContainsFold predicate on the "subtopic_id" field.
func SubtopicIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldSubtopicID, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldRepetitions, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldIntervalDays, v))
}

// NextDueAtEQ applies the EQ predicate on the "next_due_at" field.
func NextDueAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextDueAt, v))
}

// NextDueAtNEQ applies the NEQ predicate on the "next_due_at" field.
func NextDueAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldNextDueAt, v))
}

// NextDueAtIn applies the In predicate on the "next_due_at" field.
func NextDueAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldNextDueAt, vs...))
}

// NextDueAtNotIn applies the NotIn predicate on the "next_due_at" field.
func NextDueAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldNextDueAt, vs...))
}

// NextDueAtGT applies the GT predicate on the "next_due_at" field.
func NextDueAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldNextDueAt, v))
}

// NextDueAtGTE applies the GTE predicate on the "next_due_at" field.
func NextDueAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldNextDueAt, v))
}

// NextDueAtLT applies the LT predicate on the "next_due_at" field.
func NextDueAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldNextDueAt, v))
}

// NextDueAtLTE applies the LTE predicate on the "next_due_at" field.
func NextDueAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldNextDueAt, v))
}

// NextDueAtIsNil applies the IsNil predicate on the "next_due_at" field.
func NextDueAtIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldNextDueAt))
}

// NextDueAtNotNil applies the NotNil predicate on the "next_due_at" field.
func NextDueAtNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldNextDueAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldStatus, v))
}

// CorrectStreakEQ applies the EQ predicate on the "correct_streak" field.
func CorrectStreakEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCorrectStreak, v))
}

// CorrectStreakNEQ applies the NEQ predicate on the "correct_streak" field.
func CorrectStreakNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCorrectStreak, v))
}

// CorrectStreakIn applies the In predicate on the "correct_streak" field.
func CorrectStreakIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCorrectStreak, vs...))
}

// CorrectStreakNotIn applies the NotIn predicate on the "correct_streak" field.
func CorrectStreakNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCorrectStreak, vs...))
}

// CorrectStreakGT applies the GT predicate on the "correct_streak" field.
func CorrectStreakGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCorrectStreak, v))
}

// CorrectStreakGTE applies the GTE predicate on the "correct_streak" field.
func CorrectStreakGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCorrectStreak, v))
}

// CorrectStreakLT applies the LT predicate on the "correct_streak" field.
func CorrectStreakLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCorrectStreak, v))
}

// CorrectStreakLTE applies the LTE predicate on the "correct_streak" field.
func CorrectStreakLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCorrectStreak, v))
}

// IncorrectStreakEQ applies the EQ predicate on the "incorrect_streak" field.
func IncorrectStreakEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIncorrectStreak, v))
}

// IncorrectStreakNEQ applies the NEQ predicate on the "incorrect_streak" field.
func IncorrectStreakNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldIncorrectStreak, v))
}

// IncorrectStreakIn applies the In predicate on the "incorrect_streak" field.
func IncorrectStreakIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldIncorrectStreak, vs...))
}

// IncorrectStreakNotIn applies the NotIn predicate on the "incorrect_streak" field.
func IncorrectStreakNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldIncorrectStreak, vs...))
}

// IncorrectStreakGT applies the GT predicate on the "incorrect_streak" field.
func IncorrectStreakGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldIncorrectStreak, v))
}

// IncorrectStreakGTE applies the GTE predicate on the "incorrect_streak" field.
func IncorrectStreakGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldIncorrectStreak, v))
}

// IncorrectStreakLT applies the LT predicate on the "incorrect_streak" field.
func IncorrectStreakLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldIncorrectStreak, v))
}

// IncorrectStreakLTE applies the LTE predicate on the "incorrect_streak" field.
func IncorrectStreakLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldIncorrectStreak, v))
}

// TotalCorrectEQ applies the EQ predicate on the "total_correct" field.
func TotalCorrectEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalCorrectNEQ applies the NEQ predicate on the "total_correct" field.
func TotalCorrectNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldTotalCorrect, v))
}

// TotalCorrectIn applies the In predicate on the "total_correct" field.
func TotalCorrectIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldTotalCorrect, vs...))
}

// TotalCorrectNotIn applies the NotIn predicate on the "total_correct" field.
func TotalCorrectNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldTotalCorrect, vs...))
}

// TotalCorrectGT applies the GT predicate on the "total_correct" field.
func TotalCorrectGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldTotalCorrect, v))
}

// TotalCorrectGTE applies the GTE predicate on the "total_correct" field.
func TotalCorrectGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldTotalCorrect, v))
}

// TotalCorrectLT applies the LT predicate on the "total_correct" field.
func TotalCorrectLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldTotalCorrect, v))
}

// TotalCorrectLTE applies the LTE predicate on the "total_correct" field.
func TotalCorrectLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldTotalCorrect, v))
}

// TotalIncorrectEQ applies the EQ predicate on the "total_incorrect" field.
func TotalIncorrectEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldTotalIncorrect, v))
}

// TotalIncorrectNEQ applies the NEQ predicate on the "total_incorrect" field.
func TotalIncorrectNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldTotalIncorrect, v))
}

// TotalIncorrectIn applies the In predicate on the "total_incorrect" field.
func TotalIncorrectIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldTotalIncorrect, vs...))
}

// TotalIncorrectNotIn applies the NotIn predicate on the "total_incorrect" field.
func TotalIncorrectNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldTotalIncorrect, vs...))
}

// TotalIncorrectGT applies the GT predicate on the "total_incorrect" field.
func TotalIncorrectGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldTotalIncorrect, v))
}

// TotalIncorrectGTE applies the GTE predicate on the "total_incorrect" field.
func TotalIncorrectGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldTotalIncorrect, v))
}

// TotalIncorrectLT applies the LT predicate on the "total_incorrect" field.
func TotalIncorrectLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldTotalIncorrect, v))
}

// TotalIncorrectLTE applies the LTE predicate on the "total_incorrect" field.
func TotalIncorrectLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldTotalIncorrect, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldLastReviewedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.NotPredicates(p))
}
