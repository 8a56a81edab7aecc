// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContextEntriesColumns holds the columns for the "context_entries" table.
	ContextEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_kind", Type: field.TypeEnum, Enums: []string{"user", "agent", "system"}},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "actor_version", Type: field.TypeString, Nullable: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trigger", Type: field.TypeJSON, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// ContextEntriesTable holds the schema information for the "context_entries" table.
	ContextEntriesTable = &schema.Table{
		Name:       "context_entries",
		Columns:    ContextEntriesColumns,
		PrimaryKey: []*schema.Column{ContextEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_entries_tasks_entries",
				Columns:    []*schema.Column{ContextEntriesColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextentry_task_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{ContextEntriesColumns[10], ContextEntriesColumns[1]},
			},
			{
				Name:    "contextentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextEntriesColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_tasks_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "template_snapshot", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "active", "waiting_for_input", "completed", "failed", "cancelled"}, Default: "created"},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "latest_sequence", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[7]},
			},
			{
				Name:    "task_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[13]},
			},
		},
	}
	// UIRequestsColumns holds the columns for the "ui_requests" table.
	UIRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "template_kind", Type: field.TypeEnum, Enums: []string{"form", "confirmation", "selection", "upload", "progress", "error", "success", "waiting"}},
		{Name: "semantic_data", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "responded", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "originating_event_id", Type: field.TypeString, Nullable: true},
		{Name: "originating_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// UIRequestsTable holds the schema information for the "ui_requests" table.
	UIRequestsTable = &schema.Table{
		Name:       "ui_requests",
		Columns:    UIRequestsColumns,
		PrimaryKey: []*schema.Column{UIRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ui_requests_tasks_ui_requests",
				Columns:    []*schema.Column{UIRequestsColumns[11]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uirequest_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{UIRequestsColumns[11], UIRequestsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContextEntriesTable,
		EventsTable,
		TasksTable,
		UIRequestsTable,
	}
)

func init() {
	ContextEntriesTable.ForeignKeys[0].RefTable = TasksTable
	EventsTable.ForeignKeys[0].RefTable = TasksTable
	UIRequestsTable.ForeignKeys[0].RefTable = TasksTable
}
