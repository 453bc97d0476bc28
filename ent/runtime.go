// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/revisa-app/revisa/ent/card"
	"github.com/revisa-app/revisa/ent/contest"
	"github.com/revisa-app/revisa/ent/reviewevent"
	"github.com/revisa-app/revisa/ent/reviewrecord"
	"github.com/revisa-app/revisa/ent/schema"
	"github.com/revisa-app/revisa/ent/subtopic"
	"github.com/revisa-app/revisa/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescSubtopicID is the schema descriptor for subtopic_id field.
	cardDescSubtopicID := cardFields[1].Descriptor()
	// card.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	card.SubtopicIDValidator = cardDescSubtopicID.Validators[0].(func(string) error)
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[2].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[3].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[5].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.IDValidator is a validator for the "id" field. It is called by the builders before save.
	card.IDValidator = cardDescID.Validators[0].(func(string) error)
	contestFields := schema.Contest{}.Fields()
	_ = contestFields
	// contestDescName is the schema descriptor for name field.
	contestDescName := contestFields[1].Descriptor()
	// contest.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contest.NameValidator = contestDescName.Validators[0].(func(string) error)
	// contestDescCreatedAt is the schema descriptor for created_at field.
	contestDescCreatedAt := contestFields[3].Descriptor()
	// contest.DefaultCreatedAt holds the default value on creation for the created_at field.
	contest.DefaultCreatedAt = contestDescCreatedAt.Default.(func() time.Time)
	// contestDescID is the schema descriptor for id field.
	contestDescID := contestFields[0].Descriptor()
	// contest.IDValidator is a validator for the "id" field. It is called by the builders before save.
	contest.IDValidator = contestDescID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[0].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[1].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescContestID is the schema descriptor for contest_id field.
	revieweventDescContestID := revieweventFields[2].Descriptor()
	// reviewevent.ContestIDValidator is a validator for the "contest_id" field. It is called by the builders before save.
	reviewevent.ContestIDValidator = revieweventDescContestID.Validators[0].(func(string) error)
	// revieweventDescSubtopicID is the schema descriptor for subtopic_id field.
	revieweventDescSubtopicID := revieweventFields[3].Descriptor()
	// reviewevent.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	reviewevent.SubtopicIDValidator = revieweventDescSubtopicID.Validators[0].(func(string) error)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[4].Descriptor()
	// reviewevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	reviewevent.QualityValidator = func() func(int) error {
		validators := revieweventDescQuality.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(quality int) error {
			for _, fn := range fns {
				if err := fn(quality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescUserID is the schema descriptor for user_id field.
	reviewrecordDescUserID := reviewrecordFields[0].Descriptor()
	// reviewrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewrecord.UserIDValidator = reviewrecordDescUserID.Validators[0].(func(string) error)
	// reviewrecordDescCardID is the schema descriptor for card_id field.
	reviewrecordDescCardID := reviewrecordFields[1].Descriptor()
	// reviewrecord.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewrecord.CardIDValidator = reviewrecordDescCardID.Validators[0].(func(string) error)
	// reviewrecordDescContestID is the schema descriptor for contest_id field.
	reviewrecordDescContestID := reviewrecordFields[2].Descriptor()
	// reviewrecord.ContestIDValidator is a validator for the "contest_id" field. It is called by the builders before save.
	reviewrecord.ContestIDValidator = reviewrecordDescContestID.Validators[0].(func(string) error)
	// reviewrecordDescSubtopicID is the schema descriptor for subtopic_id field.
	reviewrecordDescSubtopicID := reviewrecordFields[3].Descriptor()
	// reviewrecord.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	reviewrecord.SubtopicIDValidator = reviewrecordDescSubtopicID.Validators[0].(func(string) error)
	// reviewrecordDescRepetitions is the schema descriptor for repetitions field.
	reviewrecordDescRepetitions := reviewrecordFields[4].Descriptor()
	// reviewrecord.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewrecord.DefaultRepetitions = reviewrecordDescRepetitions.Default.(int)
	// reviewrecord.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewrecord.RepetitionsValidator = reviewrecordDescRepetitions.Validators[0].(func(int) error)
	// reviewrecordDescEaseFactor is the schema descriptor for ease_factor field.
	reviewrecordDescEaseFactor := reviewrecordFields[5].Descriptor()
	// reviewrecord.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewrecord.DefaultEaseFactor = reviewrecordDescEaseFactor.Default.(float64)
	// reviewrecordDescIntervalDays is the schema descriptor for interval_days field.
	reviewrecordDescIntervalDays := reviewrecordFields[6].Descriptor()
	// reviewrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewrecord.DefaultIntervalDays = reviewrecordDescIntervalDays.Default.(int)
	// reviewrecordDescStatus is the schema descriptor for status field.
	reviewrecordDescStatus := reviewrecordFields[8].Descriptor()
	// reviewrecord.DefaultStatus holds the default value on creation for the status field.
	reviewrecord.DefaultStatus = reviewrecordDescStatus.Default.(string)
	// reviewrecordDescCorrectStreak is the schema descriptor for correct_streak field.
	reviewrecordDescCorrectStreak := reviewrecordFields[9].Descriptor()
	// reviewrecord.DefaultCorrectStreak holds the default value on creation for the correct_streak field.
	reviewrecord.DefaultCorrectStreak = reviewrecordDescCorrectStreak.Default.(int)
	// reviewrecordDescIncorrectStreak is the schema descriptor for incorrect_streak field.
	reviewrecordDescIncorrectStreak := reviewrecordFields[10].Descriptor()
	// reviewrecord.DefaultIncorrectStreak holds the default value on creation for the incorrect_streak field.
	reviewrecord.DefaultIncorrectStreak = reviewrecordDescIncorrectStreak.Default.(int)
	// reviewrecordDescTotalCorrect is the schema descriptor for total_correct field.
	reviewrecordDescTotalCorrect := reviewrecordFields[11].Descriptor()
	// reviewrecord.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	reviewrecord.DefaultTotalCorrect = reviewrecordDescTotalCorrect.Default.(int)
	// reviewrecordDescTotalIncorrect is the schema descriptor for total_incorrect field.
	reviewrecordDescTotalIncorrect := reviewrecordFields[12].Descriptor()
	// reviewrecord.DefaultTotalIncorrect holds the default value on creation for the total_incorrect field.
	reviewrecord.DefaultTotalIncorrect = reviewrecordDescTotalIncorrect.Default.(int)
	// reviewrecordDescVersion is the schema descriptor for version field.
	reviewrecordDescVersion := reviewrecordFields[14].Descriptor()
	// reviewrecord.DefaultVersion holds the default value on creation for the version field.
	reviewrecord.DefaultVersion = reviewrecordDescVersion.Default.(int64)
	// reviewrecordDescCreatedAt is the schema descriptor for created_at field.
	reviewrecordDescCreatedAt := reviewrecordFields[15].Descriptor()
	// reviewrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewrecord.DefaultCreatedAt = reviewrecordDescCreatedAt.Default.(func() time.Time)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescTopicID is the schema descriptor for topic_id field.
	subtopicDescTopicID := subtopicFields[1].Descriptor()
	// subtopic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	subtopic.TopicIDValidator = subtopicDescTopicID.Validators[0].(func(string) error)
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[2].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	// subtopicDescCreatedAt is the schema descriptor for created_at field.
	subtopicDescCreatedAt := subtopicFields[3].Descriptor()
	// subtopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtopic.DefaultCreatedAt = subtopicDescCreatedAt.Default.(func() time.Time)
	// subtopicDescID is the schema descriptor for id field.
	subtopicDescID := subtopicFields[0].Descriptor()
	// subtopic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	subtopic.IDValidator = subtopicDescID.Validators[0].(func(string) error)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescContestID is the schema descriptor for contest_id field.
	topicDescContestID := topicFields[1].Descriptor()
	// topic.ContestIDValidator is a validator for the "contest_id" field. It is called by the builders before save.
	topic.ContestIDValidator = topicDescContestID.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[3].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	topic.IDValidator = topicDescID.Validators[0].(func(string) error)
}
