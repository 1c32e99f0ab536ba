// One-shot tool: regenerate TrackData.lua from wago.tools DB2 exports.
//
// Usage:
//
//	go run cmd/trackdata/main.go
//	go run cmd/trackdata/main.go --force
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/aliensearust/LootWishlist/internal/config"
	"github.com/aliensearust/LootWishlist/internal/trackdata"
	"github.com/aliensearust/LootWishlist/internal/util"
	"github.com/aliensearust/LootWishlist/internal/wago"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "regenerate even if the build version has not changed")
	flag.BoolVar(&force, "f", false, "shorthand for -force")
	flag.Parse()

	cfg, err := config.Load("config/trackdata.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	util.SetDefault(util.NewLogger(cfg.Logging.Level))

	client := wago.NewClient(cfg.Wago)
	gen, err := trackdata.NewGenerator(client, cfg)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if err := gen.Run(context.Background(), force); err != nil {
		log.Fatalf("error: %v", err)
	}

	slog.Info("done")
}
