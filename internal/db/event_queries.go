package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

// ReplaceTickerEvents swaps a ticker's stored events for the freshly
// synthesized set in one transaction. Event ids are deterministic, so
// wholesale replacement keeps reruns idempotent without upsert
// bookkeeping.
func (p *Pool) ReplaceTickerEvents(ctx context.Context, market, ticker string, evs []pipeline.Event) error {
	if p == nil || p.gdb == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	records := make([]EventRecord, 0, len(evs))
	for _, ev := range evs {
		record, err := recordFromEvent(ev)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", ev.ID, err)
		}
		records = append(records, record)
	}

	return p.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("market = ? AND ticker = ?", market, ticker).
			Delete(&EventRecord{}).Error; err != nil {
			return fmt.Errorf("delete previous events: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert events: %w", err)
		}
		return nil
	})
}

// LoadEvents reads every stored event back into domain form, newest
// update first.
func (p *Pool) LoadEvents(ctx context.Context) ([]pipeline.Event, error) {
	if p == nil || p.gdb == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	var records []EventRecord
	if err := p.gdb.WithContext(ctx).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	evs := make([]pipeline.Event, 0, len(records))
	for _, record := range records {
		ev, err := record.toEvent()
		if err != nil {
			return nil, fmt.Errorf("decode event %s: %w", record.EventID, err)
		}
		evs = append(evs, ev)
	}
	return evs, nil
}

// StartRun opens a pipeline run row and returns its id.
func (p *Pool) StartRun(ctx context.Context, command string) (int64, error) {
	if p == nil || p.gdb == nil {
		return 0, fmt.Errorf("database pool is not initialized")
	}
	run := PipelineRun{Command: command, Status: "running"}
	if err := p.gdb.WithContext(ctx).Create(&run).Error; err != nil {
		return 0, fmt.Errorf("start pipeline run: %w", err)
	}
	return run.RunID, nil
}

// FinishRun closes a pipeline run row. A non-nil runErr marks the run
// failed and stores the message.
func (p *Pool) FinishRun(ctx context.Context, runID int64, articlesFetched, eventsWritten int, runErr error) error {
	if p == nil || p.gdb == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"finished_at":      &now,
		"status":           "succeeded",
		"articles_fetched": articlesFetched,
		"events_written":   eventsWritten,
	}
	if runErr != nil {
		msg := runErr.Error()
		updates["status"] = "failed"
		updates["error_message"] = &msg
	}

	result := p.gdb.WithContext(ctx).
		Model(&PipelineRun{}).
		Where("run_id = ?", runID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("finish pipeline run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("pipeline run %d not found", runID)
	}
	return nil
}

func recordFromEvent(ev pipeline.Event) (EventRecord, error) {
	summary, err := json.Marshal(ev.Summary2)
	if err != nil {
		return EventRecord{}, err
	}
	links, err := json.Marshal(ev.Links)
	if err != nil {
		return EventRecord{}, err
	}
	return EventRecord{
		EventID:    ev.ID,
		Market:     ev.Market,
		Ticker:     ev.Ticker,
		StartedAt:  ev.StartedAt,
		UpdatedAt:  ev.UpdatedAt,
		EventType:  string(ev.Type),
		Summary:    summary,
		Why:        ev.Why,
		Confidence: string(ev.Confidence),
		Links:      links,
	}, nil
}

func (r EventRecord) toEvent() (pipeline.Event, error) {
	var summary []string
	if len(r.Summary) > 0 {
		if err := json.Unmarshal(r.Summary, &summary); err != nil {
			return pipeline.Event{}, fmt.Errorf("summary column: %w", err)
		}
	}
	var links []pipeline.Link
	if len(r.Links) > 0 {
		if err := json.Unmarshal(r.Links, &links); err != nil {
			return pipeline.Event{}, fmt.Errorf("links column: %w", err)
		}
	}
	return pipeline.Event{
		ID:         r.EventID,
		Market:     r.Market,
		Ticker:     r.Ticker,
		StartedAt:  r.StartedAt,
		UpdatedAt:  r.UpdatedAt,
		Type:       pipeline.Label(r.EventType),
		Summary2:   summary,
		Why:        r.Why,
		Confidence: pipeline.Confidence(r.Confidence),
		Links:      links,
	}, nil
}
