package engine

import "github.com/lixenwraith/invaders/core"

type commandKind uint8

const (
	commandSpawn commandKind = iota
	commandDespawn
)

type command struct {
	kind    commandKind
	entity  core.Entity
	inserts []func(core.Entity)
}

// Commands buffers structural changes until Flush
// Systems spawn and despawn through it so that iteration never sees a half-applied change
type Commands struct {
	world *World
	queue []command
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// EntityBuilder collects components for an entity reserved by Spawn
type EntityBuilder struct {
	cmds    *Commands
	entity  core.Entity
	inserts []func(core.Entity)
	built   bool
}

// Spawn reserves an id immediately; components land in stores on Flush after Build
func (c *Commands) Spawn() *EntityBuilder {
	return &EntityBuilder{cmds: c, entity: c.world.CreateEntity()}
}

// With adds a component of type T to the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.inserts = append(eb.inserts, func(e core.Entity) { store.Set(e, comp) })
	return eb
}

// Entity returns the reserved id
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build queues the spawn and returns the reserved id
func (eb *EntityBuilder) Build() core.Entity {
	if !eb.built {
		eb.built = true
		eb.cmds.queue = append(eb.cmds.queue, command{kind: commandSpawn, entity: eb.entity, inserts: eb.inserts})
	}
	return eb.entity
}

// Despawn queues removal of an entity; despawning a dead entity is a no-op
func (c *Commands) Despawn(e core.Entity) {
	c.queue = append(c.queue, command{kind: commandDespawn, entity: e})
}

// DespawnAll queues removal of each entity
func (c *Commands) DespawnAll(entities []core.Entity) {
	for _, e := range entities {
		c.Despawn(e)
	}
}

// Pending returns whether entity e has a queued despawn
func (c *Commands) Pending(e core.Entity) bool {
	for _, cmd := range c.queue {
		if cmd.kind == commandDespawn && cmd.entity == e {
			return true
		}
	}
	return false
}

// Len returns the number of queued commands
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies queued commands in order
func (c *Commands) Flush() {
	if len(c.queue) == 0 {
		return
	}
	queue := c.queue
	c.queue = nil
	for _, cmd := range queue {
		switch cmd.kind {
		case commandSpawn:
			for _, insert := range cmd.inserts {
				insert(cmd.entity)
			}
		case commandDespawn:
			c.world.DestroyEntity(cmd.entity)
		}
	}
}

// Reset drops queued commands without applying them
func (c *Commands) Reset() {
	c.queue = nil
}
