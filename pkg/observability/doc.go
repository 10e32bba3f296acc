/*
Package observability turns wizard lifecycle events into Prometheus metrics
and structured log lines.

Both are exposed as domain.LifecycleHooks so they can be handed to the
aggregator and the navigator; Combine merges several hook sets into one.
*/
package observability
