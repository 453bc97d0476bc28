// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// Contest is the predicate function for contest builders.
type Contest func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// ReviewRecord is the predicate function for reviewrecord builders.
type ReviewRecord func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
