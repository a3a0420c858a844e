// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fleet operations system. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CreationPolicy: A domain service that validates work-order creation
//     against device state and assignee eligibility
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
