// Package clockface turns a time of day into analog clock geometry.
//
// The package is renderer-agnostic. It computes hand angles, a drop shadow
// for each hand lit from a fixed light source, the markings to draw on the
// dial, and an eased "tick" for the second hand. Renderers call into it once
// per frame and paint the numbers it returns; the Ebitengine renderer lives in
// the ebitenclock subpackage.
//
// # Quick start
//
// Static faces only need the pure functions:
//
//	angles := clockface.CalculateAngles(3, 0, 0, 0) // {Hour: 90}
//	shadow := clockface.CalculateShadow(angles.Hour, 300, clockface.DefaultHandDistance)
//
// Live clocks own an [Engine] and advance it once per frame:
//
//	engine := clockface.NewEngine(clockface.Options{Timezone: "Asia/Tokyo"})
//	// every frame:
//	engine.UpdateTick() // or engine.UpdateSweep() for a smooth second hand
//	frame := engine.Frame(faceWidth)
//	// paint frame.Angles and frame.Shadows
//
// # Tick and sweep
//
// In tick mode the second hand jumps once per second, eased with
// [EaseOutBack] so it overshoots slightly and settles like a mechanical
// movement. In sweep mode it moves continuously from the live millisecond
// value.
//
// # Time
//
// The engine never calls time.Now directly. It reads a [TimeSource], by
// default a [ZoneSource] over [SystemClock]; tests substitute a fixed or fake
// clock (see the clockfacetest package). Unknown timezone names fall back to
// local time.
//
// # Concurrency
//
// Nothing here is safe for concurrent use. Each [Engine] has one writer,
// usually a frame callback, and instances are fully independent.
package clockface
