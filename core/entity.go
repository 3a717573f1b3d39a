package core

// Entity is a unique identifier for an entity
// IDs are allocated monotonically, so ordering by ID is ordering by creation
type Entity uint64

// NoEntity is the reserved zero ID, never allocated by a world
const NoEntity Entity = 0
