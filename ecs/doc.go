// Package ecs provides ECS adapters for touchstick.
//
// [NewDonburiSink] bridges the emulated gamepad into a [Donburi] world as
// typed events; subscribe to [GamepadEventType] in your systems to receive
// connect, disconnect and axis events. [StickSync] mirrors stick values into
// entities carrying [StickComponent] so systems can query them.
//
// Usage:
//
//	reg.SetGamepadSink(ecs.NewDonburiSink(world))
//	sync := ecs.NewStickSync(world)
//	// each frame, after reg.Update():
//	sync.Sync(reg)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
