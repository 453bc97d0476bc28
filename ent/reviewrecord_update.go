// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisa-app/revisa/ent/predicate"
	"github.com/revisa-app/revisa/ent/reviewrecord"
)

// ReviewRecordUpdate is the builder for updating ReviewRecord entities.
type ReviewRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdate) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewRecordUpdate) SetUserID(v string) *ReviewRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableUserID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewRecordUpdate) SetCardID(v string) *ReviewRecordUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableCardID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetContestID sets the "contest_id" field.
func (_u *ReviewRecordUpdate) SetContestID(v string) *ReviewRecordUpdate {
	_u.mutation.SetContestID(v)
	return _u
}

// SetNillableContestID sets the "contest_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableContestID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetContestID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *ReviewRecordUpdate) SetSubtopicID(v string) *ReviewRecordUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableSubtopicID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewRecordUpdate) SetRepetitions(v int) *ReviewRecordUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableRepetitions(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewRecordUpdate) AddRepetitions(v int) *ReviewRecordUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdate) SetEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableEaseFactor(v *float64) *ReviewRecordUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdate) AddEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdate) SetIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableIntervalDays(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdate) AddIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextDueAt sets the "next_due_at" field.
func (_u *ReviewRecordUpdate) SetNextDueAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetNextDueAt(v)
	return _u
}

// SetNillableNextDueAt sets the "next_due_at" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableNextDueAt(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetNextDueAt(*v)
	}
	return _u
}

// ClearNextDueAt clears the value of the "next_due_at" field.
func (_u *ReviewRecordUpdate) ClearNextDueAt() *ReviewRecordUpdate {
	_u.mutation.ClearNextDueAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewRecordUpdate) SetStatus(v string) *ReviewRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableStatus(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *ReviewRecordUpdate) SetCorrectStreak(v int) *ReviewRecordUpdate {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableCorrectStreak(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *ReviewRecordUpdate) AddCorrectStreak(v int) *ReviewRecordUpdate {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetIncorrectStreak sets the "incorrect_streak" field.
func (_u *ReviewRecordUpdate) SetIncorrectStreak(v int) *ReviewRecordUpdate {
	_u.mutation.ResetIncorrectStreak()
	_u.mutation.SetIncorrectStreak(v)
	return _u
}

// SetNillableIncorrectStreak sets the "incorrect_streak" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableIncorrectStreak(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetIncorrectStreak(*v)
	}
	return _u
}

// AddIncorrectStreak adds value to the "incorrect_streak" field.
func (_u *ReviewRecordUpdate) AddIncorrectStreak(v int) *ReviewRecordUpdate {
	_u.mutation.AddIncorrectStreak(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *ReviewRecordUpdate) SetTotalCorrect(v int) *ReviewRecordUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableTotalCorrect(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *ReviewRecordUpdate) AddTotalCorrect(v int) *ReviewRecordUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalIncorrect sets the "total_incorrect" field.
func (_u *ReviewRecordUpdate) SetTotalIncorrect(v int) *ReviewRecordUpdate {
	_u.mutation.ResetTotalIncorrect()
	_u.mutation.SetTotalIncorrect(v)
	return _u
}

// SetNillableTotalIncorrect sets the "total_incorrect" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableTotalIncorrect(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetTotalIncorrect(*v)
	}
	return _u
}

// AddTotalIncorrect adds value to the "total_incorrect" field.
func (_u *ReviewRecordUpdate) AddTotalIncorrect(v int) *ReviewRecordUpdate {
	_u.mutation.AddTotalIncorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewRecordUpdate) SetLastReviewedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewRecordUpdate) ClearLastReviewedAt() *ReviewRecordUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReviewRecordUpdate) SetVersion(v int64) *ReviewRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableVersion(v *int64) *ReviewRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReviewRecordUpdate) AddVersion(v int64) *ReviewRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdate) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewrecord.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContestID(); ok {
		if err := reviewrecord.ContestIDValidator(v); err != nil {
			return &ValidationError{Name: "contest_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.contest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := reviewrecord.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewrecord.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewrecord.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContestID(); ok {
		_spec.SetField(reviewrecord.FieldContestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(reviewrecord.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextDueAt(); ok {
		_spec.SetField(reviewrecord.FieldNextDueAt, field.TypeTime, value)
	}
	if _u.mutation.NextDueAtCleared() {
		_spec.ClearField(reviewrecord.FieldNextDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(reviewrecord.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectStreak(); ok {
		_spec.AddField(reviewrecord.FieldIncorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(reviewrecord.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalIncorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIncorrect(); ok {
		_spec.AddField(reviewrecord.FieldTotalIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewrecord.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reviewrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reviewrecord.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewRecordUpdateOne is the builder for updating a single ReviewRecord entity.
type ReviewRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewRecordUpdateOne) SetUserID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableUserID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewRecordUpdateOne) SetCardID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableCardID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetContestID sets the "contest_id" field.
func (_u *ReviewRecordUpdateOne) SetContestID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetContestID(v)
	return _u
}

// SetNillableContestID sets the "contest_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableContestID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetContestID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *ReviewRecordUpdateOne) SetSubtopicID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableSubtopicID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewRecordUpdateOne) SetRepetitions(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableRepetitions(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewRecordUpdateOne) AddRepetitions(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) SetEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableEaseFactor(v *float64) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) AddEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdateOne) SetIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableIntervalDays(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdateOne) AddIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextDueAt sets the "next_due_at" field.
func (_u *ReviewRecordUpdateOne) SetNextDueAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetNextDueAt(v)
	return _u
}

// SetNillableNextDueAt sets the "next_due_at" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableNextDueAt(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetNextDueAt(*v)
	}
	return _u
}

// ClearNextDueAt clears the value of the "next_due_at" field.
func (_u *ReviewRecordUpdateOne) ClearNextDueAt() *ReviewRecordUpdateOne {
	_u.mutation.ClearNextDueAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewRecordUpdateOne) SetStatus(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableStatus(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *ReviewRecordUpdateOne) SetCorrectStreak(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableCorrectStreak(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *ReviewRecordUpdateOne) AddCorrectStreak(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetIncorrectStreak sets the "incorrect_streak" field.
func (_u *ReviewRecordUpdateOne) SetIncorrectStreak(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetIncorrectStreak()
	_u.mutation.SetIncorrectStreak(v)
	return _u
}

// SetNillableIncorrectStreak sets the "incorrect_streak" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableIncorrectStreak(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetIncorrectStreak(*v)
	}
	return _u
}

// AddIncorrectStreak adds value to the "incorrect_streak" field.
func (_u *ReviewRecordUpdateOne) AddIncorrectStreak(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddIncorrectStreak(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *ReviewRecordUpdateOne) SetTotalCorrect(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableTotalCorrect(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *ReviewRecordUpdateOne) AddTotalCorrect(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalIncorrect sets the "total_incorrect" field.
func (_u *ReviewRecordUpdateOne) SetTotalIncorrect(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetTotalIncorrect()
	_u.mutation.SetTotalIncorrect(v)
	return _u
}

// SetNillableTotalIncorrect sets the "total_incorrect" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableTotalIncorrect(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetTotalIncorrect(*v)
	}
	return _u
}

// AddTotalIncorrect adds value to the "total_incorrect" field.
func (_u *ReviewRecordUpdateOne) AddTotalIncorrect(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddTotalIncorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewRecordUpdateOne) SetLastReviewedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewRecordUpdateOne) ClearLastReviewedAt() *ReviewRecordUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReviewRecordUpdateOne) SetVersion(v int64) *ReviewRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableVersion(v *int64) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReviewRecordUpdateOne) AddVersion(v int64) *ReviewRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdateOne) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdateOne) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewRecordUpdateOne) Select(field string, fields ...string) *ReviewRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewRecord entity.
func (_u *ReviewRecordUpdateOne) Save(ctx context.Context) (*ReviewRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) SaveX(ctx context.Context) *ReviewRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewrecord.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContestID(); ok {
		if err := reviewrecord.ContestIDValidator(v); err != nil {
			return &ValidationError{Name: "contest_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.contest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := reviewrecord.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewrecord.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReviewRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for _, f := range fields {
			if !reviewrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewrecord.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContestID(); ok {
		_spec.SetField(reviewrecord.FieldContestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(reviewrecord.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextDueAt(); ok {
		_spec.SetField(reviewrecord.FieldNextDueAt, field.TypeTime, value)
	}
	if _u.mutation.NextDueAtCleared() {
		_spec.ClearField(reviewrecord.FieldNextDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(reviewrecord.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectStreak(); ok {
		_spec.AddField(reviewrecord.FieldIncorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(reviewrecord.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalIncorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalIncorrect(); ok {
		_spec.AddField(reviewrecord.FieldTotalIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewrecord.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reviewrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reviewrecord.FieldVersion, field.TypeInt64, value)
	}
	_node = &ReviewRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
