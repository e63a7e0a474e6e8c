package middleware

import (
	"errors"

	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

// ActorFromCtx rebuilds the trusted identity pair stored by JWTMiddleware.
// Unauthenticated callers yield a zero Actor.
func ActorFromCtx(c *fiber.Ctx) workflow.Actor {
	actor := workflow.Actor{}
	if id, ok := c.Locals("userId").(uint); ok {
		actor.ID = id
	}
	if role, ok := c.Locals("role").(string); ok {
		actor.Role = role
	}
	return actor
}

// WorkflowError maps the engine's error taxonomy onto HTTP status codes.
// Messages already name the entity and rule; storage internals never leak
// because TransactionFailure replaces them with a generic retryable failure.
func WorkflowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, workflow.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, workflow.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, workflow.ErrValidation):
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, workflow.ErrTransactionFailure):
		return JsonResponse(c, fiber.StatusInternalServerError, false, "The operation could not be completed, please retry.", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

// RequireRole guards a route group to the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
