package db

import (
	"encoding/json"
	"time"
)

// EventRecord maps newsdesk.events. Summary and Links hold the
// synthesized JSON arrays verbatim so the read API can return them
// without re-deriving anything.
type EventRecord struct {
	EventID     string          `gorm:"column:event_id;type:text;primaryKey"`
	Market      string          `gorm:"column:market;type:text;not null"`
	Ticker      string          `gorm:"column:ticker;type:text;not null"`
	StartedAt   time.Time       `gorm:"column:started_at;type:timestamptz"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;type:timestamptz"`
	EventType   string          `gorm:"column:event_type;type:text;not null"`
	Summary     json.RawMessage `gorm:"column:summary;type:jsonb;not null"`
	Why         string          `gorm:"column:why;type:text;not null;default:''"`
	Confidence  string          `gorm:"column:confidence;type:text;not null"`
	Links       json.RawMessage `gorm:"column:links;type:jsonb;not null"`
	CollectedAt time.Time       `gorm:"column:collected_at;type:timestamptz;not null;default:now()"`
}

func (EventRecord) TableName() string { return "newsdesk.events" }

// PipelineRun maps newsdesk.pipeline_runs, one row per collect or
// process invocation.
type PipelineRun struct {
	RunID           int64      `gorm:"column:run_id;primaryKey;autoIncrement"`
	Command         string     `gorm:"column:command;type:text;not null"`
	StartedAt       time.Time  `gorm:"column:started_at;type:timestamptz;not null;default:now()"`
	FinishedAt      *time.Time `gorm:"column:finished_at;type:timestamptz"`
	Status          string     `gorm:"column:status;type:text;not null;default:running"`
	ArticlesFetched int        `gorm:"column:articles_fetched;type:integer;not null;default:0"`
	EventsWritten   int        `gorm:"column:events_written;type:integer;not null;default:0"`
	ErrorMessage    *string    `gorm:"column:error_message;type:text"`
}

func (PipelineRun) TableName() string { return "newsdesk.pipeline_runs" }

func autoMigrateModels() []any {
	return []any{
		&EventRecord{},
		&PipelineRun{},
	}
}
