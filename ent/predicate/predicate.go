// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContextEntry is the predicate function for contextentry builders.
type ContextEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// UIRequest is the predicate function for uirequest builders.
type UIRequest func(*sql.Selector)
