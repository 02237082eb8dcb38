// Package order provides domain entities and business logic for recording
// retail orders. It implements the Order aggregate root with lifecycle
// management and the per-order line set that stock movements must stay in
// lockstep with.
//
// The package includes:
//   - Order: the aggregate root managing identity, header fields and lines
//   - Type: the order kind (InStore, Collection, Delivery), which decides
//     the initial completion flag
//   - CollectionDetail / DeliveryDetail: validated 1:1 satellite records
//
// Key business rules:
//   - Order ids come from the store's sequence, never from callers
//   - A restored order must load its lines exactly once (two-phase load)
//     before any line-dependent call
//   - No two lines may exist for the same (order, product) pair
//   - A deleted order is terminal: any further lifecycle call is a state
//     violation, surfaced loudly rather than ignored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
