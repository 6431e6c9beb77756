// Package kernel provides the shared value primitives of the order domain.
//
// The package includes:
//   - UUID: identifier for orders, buyers, sellers and admins
//   - Money: non-negative integer-cent amounts with decimal rate arithmetic
//   - Clock: the source of "now" for lifecycle timestamps
//
// Values are immutable and safe for concurrent use.
package kernel
