// Package infrastructure provides concrete implementations of the
// interfaces defined in the core package. These implementations handle
// external concerns such as caching, HTTP communication, logging, and
// persistence.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retries and rate limiting
// - logger/logrus: Structured logger backed by logrus
// - store/sqlite: SQLite store for suggestions and guild/player preferences
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Production-ready: Include retries, timeouts, and error handling
package infrastructure
