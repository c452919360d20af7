// Package scheduler runs the periodic overdue-rental sweep.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/openshelf/openshelf/internal/database/rentals"
)

// OverdueSweeper periodically logs rentals whose return date has passed.
// Purely observational: it never mutates rental rows.
type OverdueSweeper struct {
	rentals  *rentals.Repository
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

func NewOverdueSweeper(rentalRepo *rentals.Repository, schedule string) *OverdueSweeper {
	return &OverdueSweeper{
		rentals:  rentalRepo,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start schedules the sweep job.
func (s *OverdueSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSweep)
	if err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Overdue sweep scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *OverdueSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	log.Printf("Overdue sweep scheduler: stopped")
}

func (s *OverdueSweeper) runSweep() {
	overdue, err := s.rentals.ListOverdue(time.Now())
	if err != nil {
		log.Printf("Overdue sweep failed: %v", err)
		return
	}
	if len(overdue) == 0 {
		return
	}

	log.Printf("Overdue sweep: %d rentals past their return date", len(overdue))
	for _, renting := range overdue {
		log.Printf("  renting %d: book %d rented by user %d, due %s",
			renting.ID, renting.BookID, renting.UserID, renting.ReturnDate.Format("2006-01-02"))
	}
}
