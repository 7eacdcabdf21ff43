// Package catalog provides SQLite-backed storage for rendered
// performances.
//
// A performance is a finite, fully rendered note list plus the metadata
// needed to find it again: a content-addressed identity, the session token
// of the render that produced it, and a title. The catalog is strictly
// outside the composition core - it stores what the merge engine already
// produced and never feeds anything back in.
//
// # Identity
//
// Performance IDs are content-addressed: SHA-256 over canonical JSON of
// the note list with a domain-separation prefix. Canonical JSON uses
// sorted keys, NFC-normalized strings, no HTML escaping, and shortest-form
// float formatting, so the same notes always hash to the same ID and
// duplicate renders are idempotent (ON CONFLICT DO NOTHING).
//
// # Determinism
//
// Note rows carry an explicit idx column and every read orders by it, so
// a performance always comes back in the exact order the merge engine
// emitted it - including the relative order of simultaneous notes, which
// the tie-break rule made deterministic in the first place.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: note rows cascade with their performance
package catalog
