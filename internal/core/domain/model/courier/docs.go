// Package courier provides the Courier aggregate ("retirador") of the pickup
// dispatch system.
//
// The package includes:
//   - Courier: identity, kind and the ordered set of preferred zones
//   - Kind: fixed couriers take automatic assignments, complementary ones only manual ones
//
// Key business rules:
//   - Couriers must have a valid unique identifier, a name and a kind
//   - Preferred zones declare coverage, not ownership: several couriers may
//     cover the same zone and a zone may have no courier at all
//   - Preferred zones keep the order in which they were declared and never repeat
package courier
