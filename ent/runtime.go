// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	"github.com/gianmatteo-arcana/engine-lever/ent/event"
	"github.com/gianmatteo-arcana/engine-lever/ent/schema"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contextentryFields := schema.ContextEntry{}.Fields()
	_ = contextentryFields
	// contextentryDescCreatedAt is the schema descriptor for created_at field.
	contextentryDescCreatedAt := contextentryFields[3].Descriptor()
	// contextentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextentry.DefaultCreatedAt = contextentryDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescLatestSequence is the schema descriptor for latest_sequence field.
	taskDescLatestSequence := taskFields[6].Descriptor()
	// task.DefaultLatestSequence holds the default value on creation for the latest_sequence field.
	task.DefaultLatestSequence = taskDescLatestSequence.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	uirequestFields := schema.UIRequest{}.Fields()
	_ = uirequestFields
	// uirequestDescCreatedAt is the schema descriptor for created_at field.
	uirequestDescCreatedAt := uirequestFields[6].Descriptor()
	// uirequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	uirequest.DefaultCreatedAt = uirequestDescCreatedAt.Default.(func() time.Time)
	// uirequestDescUpdatedAt is the schema descriptor for updated_at field.
	uirequestDescUpdatedAt := uirequestFields[7].Descriptor()
	// uirequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uirequest.DefaultUpdatedAt = uirequestDescUpdatedAt.Default.(func() time.Time)
	// uirequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uirequest.UpdateDefaultUpdatedAt = uirequestDescUpdatedAt.UpdateDefault.(func() time.Time)
}
