// Package votingservice implements vote casting inside the health-checks
// context.
//
// The module owns the vote lifecycle: single-card casting, the bulk
// "vote all" submission, and the synchronous summary recomputation that
// follows every committed write. A vote is keyed by (user, card, session);
// resubmission replaces the prior value so exactly one row exists per key.
package votingservice
