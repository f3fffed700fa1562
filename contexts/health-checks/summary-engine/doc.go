// Package summaryengine implements vote aggregation inside the
// health-checks context.
//
// The module owns the distribution math for red/amber/green votes, the
// materialized team and department summaries, and trend comparison against
// the previous session. Summaries are caches: every value they hold must be
// reproducible by recomputing from the underlying votes for the same scope,
// card, and session.
package summaryengine
