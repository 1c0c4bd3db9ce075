package scenes

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a room at a fixed tick rate.
type GameLoop struct {
	room     *Room
	tickRate int
	maxTicks int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop returns a loop for room. maxTicks of zero runs until Stop.
func NewGameLoop(room *Room, tickRate, maxTicks int) *GameLoop {
	return &GameLoop{
		room:     room,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run ticks the room in real time until Stop is called or maxTicks is reached.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for ticks := 0; g.maxTicks == 0 || ticks < g.maxTicks; ticks++ {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.room.Update()
		}
	}
	log.Printf("Game loop finished after %d ticks", g.maxTicks)
}

// RunFast ticks maxTicks times without waiting, stopping early on Stop.
func (g *GameLoop) RunFast() {
	for ticks := 0; ticks < g.maxTicks; ticks++ {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		default:
		}
		g.room.Update()
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
