// Package kernel provides shared value objects for the retail domain model.
//
// The package includes:
//   - Date: a calendar date exchanged at the system boundary in the fixed
//     D-MON-YY grammar, with IsValidDate/ParseDate gating every date-bearing
//     call and String rendering the canonical form
//   - Reference: an opaque, uuid-backed identifier that represents an order
//     towards the outside world, decoupled from the sequence-assigned id
//
// Both types are immutable value objects whose zero values fail Validate;
// they can only be obtained through their constructor functions.
package kernel
