// Package user provides the User aggregate root for the marketplace system.
// It owns the embedded order mirrors: denormalized copies of order status and
// delivery phase kept inside the user record so order history reads need no
// join.
//
// Key business rules:
//   - A mirror entry's status must equal the Order aggregate's status for the
//     same order id; the application layer patches both in one transaction
//   - Both mirror arrays (orders and carts) share one patch primitive
//   - A missing mirror entry on patch is tolerated, not fatal
package user
