package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredPaths(app *fiber.App) map[string]bool {
	out := map[string]bool{}
	for _, r := range app.GetRoutes() {
		out[r.Method+" "+r.Path] = true
	}
	return out
}

// Route registration only builds controllers and closures, so it is safe to
// wire against a nil DB and inspect the resulting route table.
func TestSetupRoutesRegistersExpectedPaths(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil)

	paths := registeredPaths(app)
	for _, want := range []string{
		"POST /api/auth/login",
		"POST /api/auth/register",
		"GET /api/public/surveys/:slug",
		"POST /api/public/t/:token/responses",
		"POST /api/public/webhooks/twilio",
		"GET /api/u/me",
		"POST /api/a/surveys",
		"POST /api/a/campaigns/:id/launch",
		"GET /api/a/surveys/:id/dashboard",
	} {
		assert.True(t, paths[want], "missing route %s", want)
	}
}

// The member-removal handler reads c.Params("id"); the route must declare
// the same parameter name or the lookup always misses.
func TestRemoveMemberRouteUsesIDParam(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil)

	paths := registeredPaths(app)
	require.True(t, paths["DELETE /api/a/organization/members/:id"],
		"member removal must bind its path segment as :id")
	assert.False(t, paths["DELETE /api/a/organization/members/:user_id"])
}
