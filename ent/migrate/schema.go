// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "front", Type: field.TypeString},
		{Name: "back", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1]},
			},
		},
	}
	// ContestsColumns holds the columns for the "contests" table.
	ContestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContestsTable holds the schema information for the "contests" table.
	ContestsTable = &schema.Table{
		Name:       "contests",
		Columns:    ContestsColumns,
		PrimaryKey: []*schema.Column{ContestsColumns[0]},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "contest_id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "latency_secs", Type: field.TypeFloat64},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_user_id_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_user_id_contest_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[5]},
			},
			{
				Name:    "reviewevent_user_id_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[6]},
			},
		},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "contest_id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "next_due_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_correct", Type: field.TypeInt, Default: 0},
		{Name: "total_incorrect", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_user_id_card_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[2]},
			},
			{
				Name:    "reviewrecord_user_id_next_due_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[8]},
			},
			{
				Name:    "reviewrecord_user_id_contest_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[3]},
			},
			{
				Name:    "reviewrecord_user_id_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[4]},
			},
			{
				Name:    "reviewrecord_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[9]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "contest_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_contest_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		ContestsTable,
		ReviewEventsTable,
		ReviewRecordsTable,
		SubtopicsTable,
		TopicsTable,
	}
)

func init() {
}
