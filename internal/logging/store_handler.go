package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoreHandler is an slog.Handler that batches ERROR+ logs into the local
// sqlite database.
type StoreHandler struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.LogEntry
	ticker *time.Ticker
	done   chan struct{}
}

func NewStoreHandler(db *gorm.DB) *StoreHandler {
	h := &StoreHandler{
		db:     db,
		buffer: make([]models.LogEntry, 0, 50),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *StoreHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *StoreHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.LogEntry, 0, 50)
	h.mu.Unlock()

	if err := h.db.CreateInBatches(batch, 50).Error; err != nil {
		slog.Info("failed to flush log entries to DB", "error", err, "count", len(batch))
	}
}

func (h *StoreHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *StoreHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *StoreHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.LogEntry{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= 50
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *StoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *StoreHandler) WithGroup(name string) slog.Handler {
	return h
}
