// Package content implements the site content layer.
//
// It reconciles the bundled fallback snapshot with rows from the remote
// content tables and exposes the result through a single read/write facade
// (the Store). Presentation endpoints and the admin surface are the only
// consumers; neither contains reconciliation logic of its own.
//
// # Reconciliation
//
// Refresh loads the five collections (site_settings, quests, gallery,
// reviews, offers) concurrently. Each collection degrades independently:
// a failed or empty read leaves that collection at its fallback value while
// the others still reflect remote data. Rows are decoded field by field,
// with every missing or malformed field replaced by the value of the
// positionally paired fallback entity, so the resulting aggregate is always
// fully populated.
//
// # Ordering
//
// Within a collection, sort_order defines display order. Remote values are
// only a sorting hint on the read path; after mapping, every collection is
// re-densified to a contiguous 1..N sequence. The write path trusts the
// caller's order and densifies it before persisting.
//
// # Writes
//
// Saves are last-write-wins. Collection saves diff the remote id set against
// the input, delete rows that disappeared, and upsert the full input keyed by
// id. The delete and upsert are separate statements, not one transaction; a
// transactional Gateway implementation can close that gap without touching
// the Store.
package content
