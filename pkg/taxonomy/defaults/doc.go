// Package defaults ships the built-in taxonomy seed data and the
// ISO 3166-1 alpha-3 country code set. It holds pure fixture data, no
// validation logic.
package defaults
