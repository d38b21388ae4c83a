package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the migration and the query builders.
const (
	snapshotsTable = "snapshots"
	eventsTable    = "completion_events"
	sequenceTable  = "global_sequence"

	colID          = "id"
	colSequence    = "sequence"
	colTakenAt     = "taken_at"
	colData        = "data"
	colSubject     = "subject"
	colTopic       = "topic"
	colRepetitions = "repetitions"
	colMarked      = "marked"
	colOccurredAt  = "occurred_at"
	colNextVal     = "next_val"
)

var (
	snapshotsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colTakenAt, Type: field.TypeString},
		{Name: colData, Type: field.TypeString, Size: 2147483647},
	}
	snapshotsSchema = &schema.Table{
		Name:       snapshotsTable,
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_sequence", Columns: []*schema.Column{snapshotsColumns[1]}},
		},
	}

	eventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colSubject, Type: field.TypeString},
		{Name: colTopic, Type: field.TypeString},
		{Name: colRepetitions, Type: field.TypeInt},
		{Name: colMarked, Type: field.TypeBool},
		{Name: colOccurredAt, Type: field.TypeString},
	}
	eventsSchema = &schema.Table{
		Name:       eventsTable,
		Columns:    eventsColumns,
		PrimaryKey: []*schema.Column{eventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "completionevent_sequence", Columns: []*schema.Column{eventsColumns[1]}},
			{Name: "completionevent_subject", Columns: []*schema.Column{eventsColumns[2]}},
		},
	}

	sequenceColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colNextVal, Type: field.TypeInt64, Default: 1},
	}
	sequenceSchema = &schema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	tables = []*schema.Table{snapshotsSchema, eventsSchema, sequenceSchema}
)
