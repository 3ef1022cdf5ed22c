// Package locomotor is the movement-cost abstraction consumed by path searches.
//
// Overview:
//
//   - CostModel is the contract: CanEnter answers "may this actor stand in the
//     cell right now" (terrain, occupants, ignore-lists), MovementCost answers
//     "what does terrain charge to enter the cell" independently of occupancy.
//   - CostUnreachable is the sentinel for impassable terrain; AddCost saturates at it.
//   - Locomotor is the engine's concrete model: a value type bound once from a
//     unit's movement profile (Info), a terrain snapshot and an occupancy snapshot.
//   - Funcs adapts two closures to CostModel for callers that keep their own state.
//
// Occupancy conditions:
//
//   - CellConditionNone:            only immovable occupants (buildings) block.
//   - CellConditionTransientActors: stationary units block as well.
//   - CellConditionBlockedByMovers: moving units block too; otherwise they are
//     assumed to vacate the cell.
//
// The acting actor never blocks itself, the ignored actor never blocks, and
// occupants whose crush class is listed in Info.Crushes never block.
//
// Thread safety:
//
//   - A Locomotor and the frozen snapshots it references are read-only and may
//     be shared by concurrent searches. Build a new snapshot for the next tick
//     instead of mutating one that searches are reading.
package locomotor
