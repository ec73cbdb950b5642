// Package schedule describes what a day of pickups looks like: entries that
// join a request with its requester and zone, and the rule deciding which
// courier sees which entry.
package schedule
