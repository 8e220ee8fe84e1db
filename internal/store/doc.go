// Package store provides a SQLite-backed archive of analysis reports.
//
// Reports are content addressed: the report id is the hash of its canonical
// JSON, so writing the same analysis twice stores one row. Each row also
// carries a time-sortable row id (UUIDv7) and a logical seq.
//
// # Ordering
//
// All listings use ORDER BY seq ASC, id ASC COLLATE BINARY so results do
// not depend on wall time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
