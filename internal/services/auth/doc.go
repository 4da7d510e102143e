// Package auth holds the identity pieces the web service signs visitors in
// with.
//
// Subpackages:
//   - credential: bootstrap accounts verified with bcrypt
//   - token: HS256 bearer tokens issued to sessions
package auth
