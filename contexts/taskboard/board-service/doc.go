// Package boardservice implements the task-board domain: users, columns,
// cards, and comments in a strict ownership hierarchy.
//
// Layering:
// - domain: core entities, bounds, sentinel errors
// - application: use-case service plus the authorization decision core
// - ports: stable boundaries for persistence, hashing, and token issuance
// - adapters: concrete HTTP, memory, postgres, and auth implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - The requestor is resolved once at the HTTP boundary and passed explicitly.
// - Repositories resolve nested resources with the entire ancestor chain in
//   one lookup; they never distinguish a missing id from a wrong ancestor.
package boardservice
