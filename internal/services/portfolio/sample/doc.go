// Package sample serves the fixed demonstration portfolio shown by the web
// dashboard. Every read requires the caller's bearer token even though the
// data is the same for every account.
package sample
