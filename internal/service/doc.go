// Package service provides the registry that wires transform providers into
// the pipeline.
//
// The registry maps a service ID to its provider and dispatches tool calls
// ("transform.template") to the provider named by the tool ID prefix.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(transformProvider)
//	result, err := registry.Execute(ctx, "transform.template", params, appCtx)
package service
