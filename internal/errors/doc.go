// Package errors provides structured error handling for the MH Wilds tools.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("weapon not found")
//	err := errors.InvalidArgumentf("unknown talent: %q", name)
//
// Adding metadata:
//
//	err := errors.NotFound("weapon not found").
//	    WithMeta("weapon", weaponName)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("weaponName", input.WeaponName, vb)
//	errors.ValidateRange("weight", int(item.Weight), 0, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound when no catalog has been stored yet
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap engine errors with business context
//
// Engine layer:
//   - Return DataIntegrity for inconsistent catalogs (load time only)
//   - Return Infeasible when the model has no satisfying assignment
//   - Return DeadlineExceeded when the solve budget expires without
//     an incumbent solution
package errors
