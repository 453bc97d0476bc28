// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/revisa-app/revisa/ent/reviewrecord"
)

// ReviewRecord is the model entity for the ReviewRecord schema.
type ReviewRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CardID holds the value of the "card_id" field.
	CardID string `json:"card_id,omitempty"`
	// ContestID holds the value of the "contest_id" field.
	ContestID string `json:"contest_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID string `json:"subtopic_id,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// EaseFactor holds the value of the "ease_factor" field.
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// Nil until first review; a nil record is always due
	NextDueAt *time.Time `json:"next_due_at,omitempty"`
	// new, learning, review, or graduated
	Status string `json:"status,omitempty"`
	// CorrectStreak holds the value of the "correct_streak" field.
	CorrectStreak int `json:"correct_streak,omitempty"`
	// IncorrectStreak holds the value of the "incorrect_streak" field.
	IncorrectStreak int `json:"incorrect_streak,omitempty"`
	// TotalCorrect holds the value of the "total_correct" field.
	TotalCorrect int `json:"total_correct,omitempty"`
	// TotalIncorrect holds the value of the "total_incorrect" field.
	TotalIncorrect int `json:"total_incorrect,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// Optimistic concurrency stamp
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewrecord.FieldID, reviewrecord.FieldRepetitions, reviewrecord.FieldIntervalDays, reviewrecord.FieldCorrectStreak, reviewrecord.FieldIncorrectStreak, reviewrecord.FieldTotalCorrect, reviewrecord.FieldTotalIncorrect, reviewrecord.FieldVersion:
			values[i] = new(sql.NullInt64)
		case reviewrecord.FieldUserID, reviewrecord.FieldCardID, reviewrecord.FieldContestID, reviewrecord.FieldSubtopicID, reviewrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case reviewrecord.FieldNextDueAt, reviewrecord.FieldLastReviewedAt, reviewrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewRecord fields.
func (_m *ReviewRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case reviewrecord.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case reviewrecord.FieldContestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contest_id", values[i])
			} else if value.Valid {
				_m.ContestID = value.String
			}
		case reviewrecord.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = value.String
			}
		case reviewrecord.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case reviewrecord.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case reviewrecord.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewrecord.FieldNextDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_due_at", values[i])
			} else if value.Valid {
				_m.NextDueAt = new(time.Time)
				*_m.NextDueAt = value.Time
			}
		case reviewrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case reviewrecord.FieldCorrectStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_streak", values[i])
			} else if value.Valid {
				_m.CorrectStreak = int(value.Int64)
			}
		case reviewrecord.FieldIncorrectStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_streak", values[i])
			} else if value.Valid {
				_m.IncorrectStreak = int(value.Int64)
			}
		case reviewrecord.FieldTotalCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_correct", values[i])
			} else if value.Valid {
				_m.TotalCorrect = int(value.Int64)
			}
		case reviewrecord.FieldTotalIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_incorrect", values[i])
			} else if value.Valid {
				_m.TotalIncorrect = int(value.Int64)
			}
		case reviewrecord.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case reviewrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case reviewrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewRecord.
// Note that you need to call ReviewRecord.Unwrap() before calling this method if this ReviewRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewRecord) Update() *ReviewRecordUpdateOne {
	return NewReviewRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewRecord) Unwrap() *ReviewRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("contest_id=")
	builder.WriteString(_m.ContestID)
	builder.WriteString(", ")
	builder.WriteString("subtopic_id=")
	builder.WriteString(_m.SubtopicID)
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	if v := _m.NextDueAt; v != nil {
		builder.WriteString("next_due_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("correct_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectStreak))
	builder.WriteString(", ")
	builder.WriteString("incorrect_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectStreak))
	builder.WriteString(", ")
	builder.WriteString("total_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCorrect))
	builder.WriteString(", ")
	builder.WriteString("total_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalIncorrect))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewRecords is a parsable slice of ReviewRecord.
type ReviewRecords []*ReviewRecord
