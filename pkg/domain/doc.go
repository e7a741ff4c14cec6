/*
Package domain contains the transient value model shared by the demo's
composer, handlers, and adapters.

Nothing here outlives a single invocation: a Request carries the current
control values when the user triggers an action, a Result is the ordered
tuple of display-ready Outputs produced by the handler, and both are
discarded once the display layer has consumed them. The package is kept
pure and free of I/O so every adapter (HTTP, MCP, CLI) can share it.

# Key Entities

  - Field: declares the name, kind, and widget constraints of one input or
    output control.
  - Request: the action name plus the raw parameter map for one invocation.
  - Output: a tagged display value (text, JSON mapping, table, or figure).
  - Table: row-oriented tabular data with ordered headers.
*/
package domain
