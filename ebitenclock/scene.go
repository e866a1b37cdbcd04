package ebitenclock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const defaultCommandCap = 256

// Scene owns a node tree and its render buffers.
type Scene struct {
	root       *Node
	ClearColor Color

	commands []renderCommand
	shadow   *shadowPass

	log   zerolog.Logger
	debug bool
	stats debugStats
}

// NewScene creates a scene with an empty root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		commands: make([]renderCommand, 0, defaultCommandCap),
		shadow:   newShadowPass(),
		log:      zerolog.Nop(),
	}
}

// Root returns the root container.
func (s *Scene) Root() *Node {
	return s.root
}

// SetLogger sets the logger used for debug frame stats.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// SetDebugMode enables per-frame timing stats, logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update refreshes world transforms.
func (s *Scene) Update() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Draw traverses the tree and draws it onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)

	var t1 time.Time
	if s.debug {
		t1 = time.Now()
	}
	draws := s.submit(screen)

	if s.debug {
		s.stats = debugStats{
			traverseTime:  t1.Sub(t0),
			submitTime:    time.Since(t1),
			commandCount:  len(s.commands),
			drawCallCount: draws,
			shadowCount:   countShadows(s.commands),
		}
		s.debugLog(s.stats)
	}
}

// Dispose releases the root tree and offscreen buffers.
func (s *Scene) Dispose() {
	s.root.Dispose()
	s.shadow.dispose()
	s.commands = nil
}
