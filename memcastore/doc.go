// Package memcastore implements the goSession backend contract on top of
// Memcached via gomemcache.
//
// Memcached reinterprets relative expiries beyond 30 days as absolute Unix
// timestamps, so this store translates overlong TTLs into absolute expiry
// before handing them to the client. See the memcached protocol notes on
// expiration times.
package memcastore
