// Package services provides domain services for behaviour that needs an order
// together with information the order does not own, such as the identity of
// the caller.
//
// The package includes:
//   - ActionResolver: derives the caller's role on an order and the actions
//     currently available to them
package services
