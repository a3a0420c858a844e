// Package workorder provides domain entities and business logic for work-order
// management in the fleet operations system. It implements the WorkOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - WorkOrder: The aggregate root that manages identity, snapshots and lifecycle
//   - Status: A state machine that enforces valid status transitions
//   - OrderType: The classification of field work (deploy, repair, supply, revoke)
//   - Code: The human-readable daily identifier (date + daily sequence)
//   - Detail: One restock line of a supply order
//
// Key business rules:
//   - Work orders must have a valid identifier, code, device and assignee
//   - Status follows a defined workflow: Created -> InProgress -> Finished,
//     with Cancelled reachable from the two non-terminal states
//   - Supply orders own at least one detail line; all other types own none
//   - Assignee and device facts are snapshotted at creation and never re-derived
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
