// Package order contains the order aggregate and its value objects.
// An order captures a checkout: the customer, the fulfilling business, a
// delivery address snapshot, line items with prices frozen at order time,
// the payment method and an optional gateway payment record.
//
// The aggregate enforces the order status transition table
// (Pending -> Assigned -> InTransit -> Delivered, with Cancelled reachable
// from Pending and Assigned only) and the consistency between status and
// rider assignment.
package order
