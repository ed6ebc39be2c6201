package ecs

import (
	"github.com/phanxgames/touchstick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GamepadEventType is the Donburi event type for emulated gamepad events.
var GamepadEventType = events.NewEventType[touchstick.GamepadEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a GamepadSink backed by a Donburi world. Events are
// queued on GamepadEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) touchstick.GamepadSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGamepadEvent(event touchstick.GamepadEvent) {
	GamepadEventType.Publish(s.world, event)
}

// StickData is the per-entity mirror of one stick.
type StickData struct {
	ID     string
	Mode   touchstick.Mode
	Value  touchstick.Vec2
	Active bool
}

// StickComponent holds StickData.
var StickComponent = donburi.NewComponentType[StickData]()

// StickSync keeps one entity per stick of a Registry[string].
type StickSync struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewStickSync creates a syncer for world.
func NewStickSync(world donburi.World) *StickSync {
	return &StickSync{world: world, entities: make(map[string]donburi.Entity)}
}

// Sync creates, updates and removes entities so that they match the sticks
// of r. Call it after Registry.Update.
func (s *StickSync) Sync(r *touchstick.Registry[string]) {
	seen := make(map[string]bool, r.Len())
	for _, st := range r.Sticks() {
		seen[st.ID] = true
		ent, ok := s.entities[st.ID]
		if !ok || !s.world.Valid(ent) {
			ent = s.world.Create(StickComponent)
			s.entities[st.ID] = ent
		}
		StickComponent.SetValue(s.world.Entry(ent), StickData{
			ID:     st.ID,
			Mode:   st.Mode,
			Value:  st.Value(),
			Active: st.Active(),
		})
	}
	for id, ent := range s.entities {
		if seen[id] {
			continue
		}
		if s.world.Valid(ent) {
			s.world.Remove(ent)
		}
		delete(s.entities, id)
	}
}

// Entity returns the entity mirroring stick id.
func (s *StickSync) Entity(id string) (donburi.Entity, bool) {
	ent, ok := s.entities[id]
	return ent, ok
}
