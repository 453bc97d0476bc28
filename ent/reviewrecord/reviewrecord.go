// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewrecord type in the database.
	Label = "review_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldContestID holds the string denoting the contest_id field in the database.
	FieldContestID = "contest_id"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldNextDueAt holds the string denoting the next_due_at field in the database.
	FieldNextDueAt = "next_due_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCorrectStreak holds the string denoting the correct_streak field in the database.
	FieldCorrectStreak = "correct_streak"
	// FieldIncorrectStreak holds the string denoting the incorrect_streak field in the database.
	FieldIncorrectStreak = "incorrect_streak"
	// FieldTotalCorrect holds the string denoting the total_correct field in the database.
	FieldTotalCorrect = "total_correct"
	// FieldTotalIncorrect holds the string denoting the total_incorrect field in the database.
	FieldTotalIncorrect = "total_incorrect"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the reviewrecord in the database.
	Table = "review_records"
)

// Columns holds all SQL columns for reviewrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCardID,
	FieldContestID,
	FieldSubtopicID,
	FieldRepetitions,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldNextDueAt,
	FieldStatus,
	FieldCorrectStreak,
	FieldIncorrectStreak,
	FieldTotalCorrect,
	FieldTotalIncorrect,
	FieldLastReviewedAt,
	FieldVersion,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	CardIDValidator func(string) error
	// ContestIDValidator is a validator for the "contest_id" field. It is called by the builders before save.
	ContestIDValidator func(string) error
	// SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	SubtopicIDValidator func(string) error
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCorrectStreak holds the default value on creation for the "correct_streak" field.
	DefaultCorrectStreak int
	// DefaultIncorrectStreak holds the default value on creation for the "incorrect_streak" field.
	DefaultIncorrectStreak int
	// DefaultTotalCorrect holds the default value on creation for the "total_correct" field.
	DefaultTotalCorrect int
	// DefaultTotalIncorrect holds the default value on creation for the "total_incorrect" field.
	DefaultTotalIncorrect int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByContestID orders the results by the contest_id field.
func ByContestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestID, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByNextDueAt orders the results by the next_due_at field.
func ByNextDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDueAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCorrectStreak orders the results by the correct_streak field.
func ByCorrectStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectStreak, opts...).ToFunc()
}

// ByIncorrectStreak orders the results by the incorrect_streak field.
func ByIncorrectStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectStreak, opts...).ToFunc()
}

// ByTotalCorrect orders the results by the total_correct field.
func ByTotalCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrect, opts...).ToFunc()
}

// ByTotalIncorrect orders the results by the total_incorrect field.
func ByTotalIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalIncorrect, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
