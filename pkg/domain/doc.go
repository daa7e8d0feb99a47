/*
Package domain contains the core domain models of the Switchboard dispatch runtime.

It defines the vocabulary shared by every other layer: tool definitions, call
results, the error taxonomy and observability events. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - ToolDefinition: Describes one callable tool (wire name, description, argument schema).
  - CallResult: The uniform envelope of a dispatch, a text payload flagged ok or error.
  - Error: A classified failure carrying a Kind from the error taxonomy.
  - ToolEvent / DispatchHooks: Callbacks emitted around every tool invocation.
*/
package domain
