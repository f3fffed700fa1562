// Package directoryservice owns the organizational hierarchy: departments,
// teams, users, and the role-based access checks layered on top of them.
//
// Roles order from engineer up to admin; management and summary-visibility
// rules live on the User entity so every consumer applies the same policy.
package directoryservice
