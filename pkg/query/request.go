package query

import (
	"github.com/gofiber/fiber/v2"
)

// Params collects the request query string keeping repeated keys.
func Params(ctx *fiber.Ctx) map[string][]string {
	params := map[string][]string{}
	ctx.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = append(params[string(key)], string(value))
	})

	return params
}

func FromRequest(ctx *fiber.Ctx) (*Descriptor, error) {
	return Parse(Params(ctx))
}
