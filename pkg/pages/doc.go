// Package pages contains the writers behind each wizard page. Every page
// validates its own input and stores its fields in the session or durable
// store, where the aggregator later picks them up.
package pages
