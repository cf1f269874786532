// Package redisstore implements the goSession backend contract on top of
// Redis via go-redis. Redis expires keys natively, so the relative TTL passes
// straight through.
//
// The store holds a single shared client. Either inject one with [New] or let
// [Store.Create] dial from config at engine build time; after that no
// request-path connection management happens.
package redisstore
