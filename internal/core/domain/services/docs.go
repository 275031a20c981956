// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate. TransitionPolicy is the authorization
// gate between the status transition table and the actors invoking it.
package services
