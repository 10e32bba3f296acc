/*
Package ports defines the driven ports (interfaces) of the trip wizard.

These interfaces decouple the aggregator and the page writers from concrete
storage and catalog implementations, so the same flow runs against memory,
file or Redis backends.

# Key Interfaces

  - Store: a string key-value store. The wizard uses two of them, one
    session-scoped and one durable.
  - Catalog: the destinations and guides offered by the selection pages.
*/
package ports
