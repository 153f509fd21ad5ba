package core

import (
	"log"
	"time"
)

// Loop drives a Sim from wall time on a fixed ticker. The sim's own
// accumulator absorbs ticker jitter.
type Loop struct {
	sim      *Sim
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewLoop(sim *Sim, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the match finishes.
func (l *Loop) Run() {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	last := time.Now()
	for {
		select {
		case <-l.stopChan:
			l.running = false
			log.Println("Simulation loop stopped")
			return
		case now := <-ticker.C:
			l.sim.Advance(now.Sub(last).Seconds())
			last = now

			if l.sim.Match().Finished() {
				l.running = false
				log.Printf("Match finished, winner: player %d", l.sim.Match().WinnerIndex)
				return
			}
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
