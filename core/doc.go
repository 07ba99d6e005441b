// Package core contains the business logic for the runebot lookup
// pipeline. It is designed to be framework-agnostic and can be used
// independently of any bot frontend or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (PageDocument, records, hiscore rows)
// - wiki: Page fetch, cache, parse, and the generic article lookup
// - extract: Content-type extractors turning pages into typed records
// - hiscores: Leaderboard client and the pure combat calculators
// - prices: Live exchange data pipeline and chart rendering
// - services: Cross-cutting services (thumbnail colour, permissions)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No frontend dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
package core
