// Package touchstick provides on-screen virtual joysticks for [Ebitengine]
// games running on touch devices.
//
// A stick turns a drag gesture inside its interaction area into a normalized
// 2D value with length at most 1 and y pointing up. Sticks come in three
// modes:
//
//   - [ModeFixed]: the stick sits at its container center; the knob travels
//     at most half the outline radius on screen.
//   - [ModeFloating]: the widget appears where the drag started and hides when
//     released or centered.
//   - [ModeDynamic]: the widget jumps to where the drag started and stays there
//     after release; the outline trails the knob slightly.
//
// # Quick start
//
// Create a [Registry], add sticks, and drive it from your game loop:
//
//	reg := touchstick.NewRegistry[string]()
//	left, _ := reg.Add("move", touchstick.Config{
//		Mode: touchstick.ModeFixed, Radius: 75,
//	})
//	left.Container = touchstick.ContainerAt(touchstick.Rect{X: 35, Y: 300, Width: 150, Height: 150})
//	left.Knob.Image, left.Outline.Image = knobImg, outlineImg
//
//	func (g *Game) Update() error {
//		g.reg.Update()
//		v := g.reg.Value("move")
//		g.player.X += v.X * speed
//		g.player.Y -= v.Y * speed
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.reg.Draw(screen, &g.drawList)
//	}
//
// [Registry.Update] polls the mouse and touch screen, recomputes every stick
// value and publishes the emulated gamepad, in that order. Hosts that deliver
// pointer events themselves disable polling with
// [Registry.SetPointerPolling] and call [Registry.PointerDown],
// [Registry.PointerMove] and [Registry.PointerUp].
//
// # Rendering
//
// Knob and outline placement is computed once per stick by
// [PositionFeedback]. Two renderers consume it: [PatchStyles] writes offsets
// into each element's [Style] for retained UI trees, and [ExtractDrawList]
// emits sorted [DrawCommand] values for immediate drawing ([SubmitDrawList]).
// Both always agree on pixel offsets.
//
// # Gamepad
//
// Sticks with a [GamepadMapping] are republished as an emulated gamepad with
// id [TouchGamepadID]; attach a sink with [Registry.SetGamepadSink]. The
// touchstick/ecs package forwards these events into a [Donburi] world.
//
// # Layouts
//
// Stick sets can be described in YAML ([LoadLayout], [Layout.Apply]) and
// reloaded while the game runs with [WatchLayout].
//
// # Testing
//
// Pointer gestures can be injected ([Registry.InjectDrag] and friends) or
// scripted from JSON with [LoadTestScript]. Debug logging of sessions and
// draw skips is enabled with [Registry.SetDebugMode].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package touchstick
