package ebitenclock

import "time"

// debugStats holds per-frame timing and draw counts. Only populated in debug
// mode.
type debugStats struct {
	traverseTime  time.Duration
	submitTime    time.Duration
	commandCount  int
	drawCallCount int
	shadowCount   int
}

func (s *Scene) debugLog(stats debugStats) {
	s.log.Debug().
		Dur("traverse", stats.traverseTime).
		Dur("submit", stats.submitTime).
		Dur("total", stats.traverseTime+stats.submitTime).
		Int("commands", stats.commandCount).
		Int("draw_calls", stats.drawCallCount).
		Int("shadows", stats.shadowCount).
		Msg("frame")
}

func countShadows(commands []renderCommand) int {
	n := 0
	for i := range commands {
		if s := commands[i].shadow; s != nil && s.Opacity > 0 {
			n++
		}
	}
	return n
}
