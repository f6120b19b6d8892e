package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := resolveFor(t, "/items", 20, 100)
		require.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)
	})

	t.Run("explicit page and per_page", func(t *testing.T) {
		p := resolveFor(t, "/items?page=3&per_page=10", 20, 100)
		require.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)
	})

	t.Run("legacy limit alias", func(t *testing.T) {
		p := resolveFor(t, "/items?limit=5", 20, 100)
		require.Equal(t, 5, p.PerPage)
	})

	t.Run("per_page capped at max", func(t *testing.T) {
		p := resolveFor(t, "/items?per_page=500", 20, 100)
		require.Equal(t, 100, p.PerPage)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		p := resolveFor(t, "/items?page=abc&per_page=-1", 20, 100)
		require.Equal(t, 1, p.Page)
		require.Equal(t, 20, p.PerPage)
	})
}

func TestBuildPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPagination(45, 2, 20)
		require.Equal(t, 3, p.TotalPages)
		require.True(t, p.HasNext)
		require.True(t, p.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := BuildPagination(0, 1, 20)
		require.Equal(t, 1, p.TotalPages)
		require.False(t, p.HasNext)
		require.False(t, p.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := BuildPagination(40, 2, 20)
		require.Equal(t, 2, p.TotalPages)
		require.False(t, p.HasNext)
	})
}
