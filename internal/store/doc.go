// Package store provides SQLite-backed storage for named sessions.
//
// A session row keeps the origin captured when the session was started, so
// later processes can resume it and measure relative time against the same
// origin. Marks are labelled relative timestamps recorded within a session.
//
// # Ordering
//
// Rows carry a logical seq INTEGER assigned as MAX(seq)+1 inside the insert
// transaction. All list queries use ORDER BY seq ASC, id ASC COLLATE BINARY,
// never wall-clock columns.
//
// # Text
//
// Session names and mark labels are NFC normalized at the store boundary, so
// visually identical names written with different Unicode compositions refer
// to the same session.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity (marks cascade on delete)
package store
