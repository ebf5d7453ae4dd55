// Command lexicon starts the HTTP facade over a single in-memory
// Database instance.
//
// Grounded on the teacher's cmd/search_engine/main.go: flag-based
// configuration, gin.New() with Recovery plus custom middleware, and a single
// router.Run call.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/go-ir/lexicon/api"
	"github.com/go-ir/lexicon/config"
	"github.com/go-ir/lexicon/database"
	"github.com/go-ir/lexicon/internal/metrics"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		port       = flag.String("port", "8080", "Port to run the server on")
		configPath = flag.String("config", "", "Path to a YAML DatabaseOptions file (optional)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("lexicon - an in-memory Boolean/TF-IDF search engine\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		flag.PrintDefaults()
		return
	}

	opts := config.DefaultOptions()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config %q: %v", *configPath, err)
		}
		opts = loaded
	}
	if problems := opts.Validate(); len(problems) > 0 {
		for _, p := range problems {
			log.Printf("config warning: %s", p)
		}
	}

	db := database.New(opts)
	m := metrics.New()

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogMiddleware(), api.CORSMiddleware())
	api.SetupRoutes(router, db, m)

	log.Printf("starting lexicon on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
