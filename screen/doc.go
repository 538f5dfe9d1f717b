// Package screen provides reference Screener implementations.
//
// The balancer treats screening as an external primitive; the screeners here
// are simple enough for tests, examples and small production setups that have
// no dedicated screening code.
package screen
