package game

import "time"

// PresenceSweeper periodically rebroadcasts every live room's player list so
// clients recover from missed or out-of-order deliveries.
type PresenceSweeper struct {
	reg      *Registry
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func StartPresenceSweeper(reg *Registry, interval time.Duration) *PresenceSweeper {
	s := &PresenceSweeper{
		reg:      reg,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *PresenceSweeper) loop() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			for _, room := range s.reg.Rooms() {
				room.SendPlayerList()
			}
		}
	}
}

// Stop halts the sweep loop and waits for it to exit.
func (s *PresenceSweeper) Stop() {
	close(s.stop)
	<-s.done
}
