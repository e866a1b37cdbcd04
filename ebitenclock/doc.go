// Package ebitenclock renders clockface clocks with Ebitengine.
//
// A clock face is a small retained scene graph: a [Scene] owns a tree of
// [Node] values (containers, solid sprites, text labels) that is traversed
// every frame into draw commands. [BaseClock] builds a face from
// clockface.FaceOptions and shows whatever reading it is given. [LiveClock]
// drives a BaseClock from a clockface.Engine, in tick or sweep mode, and
// swings the hands when its timezone changes.
//
//	scene := ebitenclock.NewScene()
//	clock, err := ebitenclock.NewLiveClock(scene, ebitenclock.DefaultLiveOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(ebitenclock.Run(clock, ebitenclock.DefaultRunConfig()))
//
// Each hand casts a drop shadow computed by clockface.CalculateShadow, drawn
// offscreen and blurred with a [BlurFilter] before the hand itself.
//
// Everything here must be used from the Ebitengine game loop goroutine.
package ebitenclock
