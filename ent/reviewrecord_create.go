// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisa-app/revisa/ent/reviewrecord"
)

// ReviewRecordCreate is the builder for creating a ReviewRecord entity.
type ReviewRecordCreate struct {
	config
	mutation *ReviewRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewRecordCreate) SetUserID(v string) *ReviewRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *ReviewRecordCreate) SetCardID(v string) *ReviewRecordCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetContestID sets the "contest_id" field.
func (_c *ReviewRecordCreate) SetContestID(v string) *ReviewRecordCreate {
	_c.mutation.SetContestID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *ReviewRecordCreate) SetSubtopicID(v string) *ReviewRecordCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewRecordCreate) SetRepetitions(v int) *ReviewRecordCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableRepetitions(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewRecordCreate) SetEaseFactor(v float64) *ReviewRecordCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableEaseFactor(v *float64) *ReviewRecordCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewRecordCreate) SetIntervalDays(v int) *ReviewRecordCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableIntervalDays(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetNextDueAt sets the "next_due_at" field.
func (_c *ReviewRecordCreate) SetNextDueAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetNextDueAt(v)
	return _c
}

// SetNillableNextDueAt sets the "next_due_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableNextDueAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetNextDueAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewRecordCreate) SetStatus(v string) *ReviewRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableStatus(v *string) *ReviewRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrectStreak sets the "correct_streak" field.
func (_c *ReviewRecordCreate) SetCorrectStreak(v int) *ReviewRecordCreate {
	_c.mutation.SetCorrectStreak(v)
	return _c
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableCorrectStreak(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetCorrectStreak(*v)
	}
	return _c
}

// SetIncorrectStreak sets the "incorrect_streak" field.
func (_c *ReviewRecordCreate) SetIncorrectStreak(v int) *ReviewRecordCreate {
	_c.mutation.SetIncorrectStreak(v)
	return _c
}

// SetNillableIncorrectStreak sets the "incorrect_streak" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableIncorrectStreak(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetIncorrectStreak(*v)
	}
	return _c
}

// SetTotalCorrect sets the "total_correct" field.
func (_c *ReviewRecordCreate) SetTotalCorrect(v int) *ReviewRecordCreate {
	_c.mutation.SetTotalCorrect(v)
	return _c
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableTotalCorrect(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetTotalCorrect(*v)
	}
	return _c
}

// SetTotalIncorrect sets the "total_incorrect" field.
func (_c *ReviewRecordCreate) SetTotalIncorrect(v int) *ReviewRecordCreate {
	_c.mutation.SetTotalIncorrect(v)
	return _c
}

// SetNillableTotalIncorrect sets the "total_incorrect" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableTotalIncorrect(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetTotalIncorrect(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewRecordCreate) SetLastReviewedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableLastReviewedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ReviewRecordCreate) SetVersion(v int64) *ReviewRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableVersion(v *int64) *ReviewRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewRecordCreate) SetCreatedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableCreatedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_c *ReviewRecordCreate) Mutation() *ReviewRecordMutation {
	return _c.mutation
}

// Save creates the ReviewRecord in the database.
func (_c *ReviewRecordCreate) Save(ctx context.Context) (*ReviewRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewRecordCreate) SaveX(ctx context.Context) *ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewRecordCreate) defaults() {
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := reviewrecord.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewrecord.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewrecord.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reviewrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		v := reviewrecord.DefaultCorrectStreak
		_c.mutation.SetCorrectStreak(v)
	}
	if _, ok := _c.mutation.IncorrectStreak(); !ok {
		v := reviewrecord.DefaultIncorrectStreak
		_c.mutation.SetIncorrectStreak(v)
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		v := reviewrecord.DefaultTotalCorrect
		_c.mutation.SetTotalCorrect(v)
	}
	if _, ok := _c.mutation.TotalIncorrect(); !ok {
		v := reviewrecord.DefaultTotalIncorrect
		_c.mutation.SetTotalIncorrect(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := reviewrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "ReviewRecord.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := reviewrecord.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContestID(); !ok {
		return &ValidationError{Name: "contest_id", err: errors.New(`ent: missing required field "ReviewRecord.contest_id"`)}
	}
	if v, ok := _c.mutation.ContestID(); ok {
		if err := reviewrecord.ContestIDValidator(v); err != nil {
			return &ValidationError{Name: "contest_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.contest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "ReviewRecord.subtopic_id"`)}
	}
	if v, ok := _c.mutation.SubtopicID(); ok {
		if err := reviewrecord.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.subtopic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewRecord.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := reviewrecord.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewRecord.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewRecord.interval_days"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewRecord.status"`)}
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		return &ValidationError{Name: "correct_streak", err: errors.New(`ent: missing required field "ReviewRecord.correct_streak"`)}
	}
	if _, ok := _c.mutation.IncorrectStreak(); !ok {
		return &ValidationError{Name: "incorrect_streak", err: errors.New(`ent: missing required field "ReviewRecord.incorrect_streak"`)}
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		return &ValidationError{Name: "total_correct", err: errors.New(`ent: missing required field "ReviewRecord.total_correct"`)}
	}
	if _, ok := _c.mutation.TotalIncorrect(); !ok {
		return &ValidationError{Name: "total_incorrect", err: errors.New(`ent: missing required field "ReviewRecord.total_incorrect"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ReviewRecord.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewRecord.created_at"`)}
	}
	return nil
}

func (_c *ReviewRecordCreate) sqlSave(ctx context.Context) (*ReviewRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewRecordCreate) createSpec() (*ReviewRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewrecord.Table, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(reviewrecord.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.ContestID(); ok {
		_spec.SetField(reviewrecord.FieldContestID, field.TypeString, value)
		_node.ContestID = value
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(reviewrecord.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewrecord.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextDueAt(); ok {
		_spec.SetField(reviewrecord.FieldNextDueAt, field.TypeTime, value)
		_node.NextDueAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldCorrectStreak, field.TypeInt, value)
		_node.CorrectStreak = value
	}
	if value, ok := _c.mutation.IncorrectStreak(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectStreak, field.TypeInt, value)
		_node.IncorrectStreak = value
	}
	if value, ok := _c.mutation.TotalCorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalCorrect, field.TypeInt, value)
		_node.TotalCorrect = value
	}
	if value, ok := _c.mutation.TotalIncorrect(); ok {
		_spec.SetField(reviewrecord.FieldTotalIncorrect, field.TypeInt, value)
		_node.TotalIncorrect = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(reviewrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReviewRecordCreateBulk is the builder for creating many ReviewRecord entities in bulk.
type ReviewRecordCreateBulk struct {
	config
	err      error
	builders []*ReviewRecordCreate
}

// Save creates the ReviewRecord entities in the database.
func (_c *ReviewRecordCreateBulk) Save(ctx context.Context) ([]*ReviewRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) SaveX(ctx context.Context) []*ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
