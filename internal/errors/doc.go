// Package errors provides the structured error handling used across the
// leveling API.
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
//	err := errors.NotFound("actor not found")
//	err := errors.InvalidArgumentf("invalid level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("actor not found").
//	    WithMeta("actor_id", actorID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get actor")
//	}
//
// Changing error semantics:
//
//	if err := client.Resolve(ctx, ref); err != nil {
//	    if isMiss(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "catalog reference not found")
//	    }
//	    return errors.Wrap(err, "catalog error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("actorID", input.ActorID, vb)
//	errors.ValidateRange("level", input.Level, 1, 30, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors before any mutation
//   - Check preconditions and return FailedPrecondition errors
//   - Treat catalog resolution misses as soft failures, never hard errors
//   - Wrap repository errors with business context
package errors
