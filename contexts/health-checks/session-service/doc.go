// Package sessionservice manages voting sessions and the health-check card
// catalog inside the health-checks context.
//
// Sessions are time-boxed voting periods ordered by date; the "active"
// session is the most recent one still flagged active. The module also
// answers participation questions: who has voted, how complete a session is.
package sessionservice
