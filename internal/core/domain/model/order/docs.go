// Package order provides the order aggregate of the marketplace and the
// transition rule engine that governs its lifecycle.
//
// The package includes:
//   - Order: the aggregate root; every status change goes through its methods
//   - Status and Role: the eight lifecycle states and four actor roles
//   - IsValidTransition / ValidNextStates: the pure, stateless rule engine
//   - Package, FeePolicy and Pricing: the commercial terms captured at checkout
//   - Action / AvailableActions: the operations a caller may offer to a user
//
// Key business rules:
//   - Only the seller delivers; only the buyer accepts or requests revisions
//   - Cancel and dispute are open to the matching party or an admin
//   - Payment and deferred completion are applied by the system actor
//   - Same-status requests succeed without recording anything
//   - Leaving the accepted state cancels the pending completion
//
// The rule engine holds no mutable state and is safe for concurrent use.
// Order values are not; callers serialise access per order.
package order
