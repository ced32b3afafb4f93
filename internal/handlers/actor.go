package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/acertaplus/solicitation-api/internal/feed"
)

// actorFromCtx resolves the authenticated actor placed in locals by the JWT
// middleware. Feed routes never run without a resolved actor.
func actorFromCtx(c fiber.Ctx) (feed.Actor, bool) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return feed.Actor{}, false
	}

	role, _ := c.Locals("role").(string)
	scopeID, _ := c.Locals("scope_id").(string)
	return feed.Actor{UID: uid, Role: role, ScopeID: scopeID}, true
}
