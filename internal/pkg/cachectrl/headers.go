package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn marks the response as publicly cacheable for an hour past t.
func OptIn(ctx *fiber.Ctx, t time.Time) {
	OptInCustom(ctx, t, time.Hour)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(offset).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

// OptOut forbids caching while still reporting when the content last changed.
func OptOut(ctx *fiber.Ctx, lastModified time.Time) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")

	if !lastModified.IsZero() {
		ctx.Response().Header.SetLastModified(lastModified)
	}
}
