package database

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Status: flag kesehatan DB yang dibaca middleware 503 dan /health.
type Status struct {
	connected atomic.Bool
	lastErr   atomic.Value // string
}

type StatusSnapshot struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

func NewStatus() *Status {
	s := &Status{}
	s.lastErr.Store("Not connected")
	return s
}

func (s *Status) Set(err error) {
	if err != nil {
		if s.connected.Swap(false) {
			log.Printf("[DB] status → DOWN: %v", err)
		}
		s.lastErr.Store(err.Error())
		return
	}
	if !s.connected.Swap(true) {
		log.Println("[DB] status → UP")
	}
	s.lastErr.Store("")
}

func (s *Status) Connected() bool { return s.connected.Load() }

func (s *Status) Snapshot() StatusSnapshot {
	msg, _ := s.lastErr.Load().(string)
	return StatusSnapshot{Connected: s.connected.Load(), Error: msg}
}

// StartHealthProbe menjadwalkan ping DB via cron dan memperbarui Status.
func StartHealthProbe(schedule string, status *Status, ping func(ctx context.Context) error) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		status.Set(ping(ctx))
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[CRON] DB health probe scheduled: %s", schedule)
	c.Start()
	return c, nil
}
