/*
Package observability provides Prometheus instrumentation for tool dispatch.

Metrics plugs into a dispatcher through domain.DispatchHooks and exposes
its collectors over HTTP in the Prometheus text format.
*/
package observability
