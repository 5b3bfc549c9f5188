// Package order provides domain entities and business logic for commercial
// order management in the procurement system. It implements the Order
// aggregate root with line items, a closed lifecycle status vocabulary, and
// the per-state lifecycle dates.
//
// The package includes:
//   - Order: The aggregate root tying items, status, and lifecycle dates together
//   - Item: An immutable order line with a derived line total
//   - Status and Variant: The closed status vocabulary for the purchase and
//     sales order books, with case-insensitive parsing
//   - NextID and Number: Identifier and order-number generation rules
//
// Key business rules:
//   - Orders are created in pending status with all lifecycle dates nil
//   - Identifier and number are assigned once and stay stable forever
//   - Status strings outside the vocabulary are stored verbatim but never
//     drive lifecycle date bookkeeping
//   - Records change only by full replacement; the lifecycle reconciler in
//     the services package derives the correct dates for each replacement
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
