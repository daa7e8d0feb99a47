/*
Package ports defines the driven ports (interfaces) for the Switchboard runtime.

These interfaces decouple the dispatch core from external implementations,
allowing handlers to work with any storage backend or filesystem and letting
transports speak to the core without knowing how it is assembled.

# Key Interfaces

  - Store: Relational persistence for CRM records (SQL in, rows out).
  - FileSystem: Read-only filesystem access for the file tools.
  - Dispatcher: The driving port transports use to list and invoke tools.
*/
package ports
