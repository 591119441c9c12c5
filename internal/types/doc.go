// Package types provides shared data structures for pipeline services.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Example Usage:
//
//	def := provider.Definition()
//	result, err := provider.Execute(ctx, def.Tools[0].ID, params, &types.Context{})
package types
