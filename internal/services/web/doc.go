// Package web serves the browser-facing portfolio dashboard.
//
// Every request passes the session gate before it reaches a module: anonymous
// visitors of protected areas are sent to the login page, signed-in visitors
// of the auth section are sent to the dashboard, and protected modules see
// the session's bearer token on the forwarded request.
package web
