// Package requester provides the Requester aggregate and its completeness rules.
//
// Email and address are modelled as kernel.Knowable values, so a requester
// either has the value or states that it is unknown. Completeness and the list
// of missing contact data are derived from those two fields plus the phone.
package requester
