package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/acertaplus/solicitation-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "auth":
		return []fx.Option{
			app.AuthModule(),
		}
	case "requests", "feed":
		// Confirmation is guarded by the feed's session state, so the two
		// modules ship together.
		return []fx.Option{
			app.AuthModule(),
			app.FeedModule(),
			app.RequestsModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.FeedModule(),
			app.RequestsModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: auth|requests|feed (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
