// Package zone holds the Zone entity: a uniquely named area that groups
// requesters and is covered by couriers.
package zone
