package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-stringdist/api"
	"github.com/gcbaptista/go-stringdist/config"
	"github.com/gcbaptista/go-stringdist/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help            = flag.Bool("help", false, "Show help message")
		version         = flag.Bool("version", false, "Show version information")
		port            = flag.String("port", "8080", "Port to run the server on")
		workers         = flag.Int("workers", 0, "Concurrent matrix columns (0 = one per CPU)")
		maxVectorLength = flag.Int("max-vector-length", config.DefaultMaxVectorLength, "Maximum strings per input vector or corpus")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("String Distance Service - approximate string matching over HTTP\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                  # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000      # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --workers 4      # Cap matrix fan-out at 4 workers\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("String Distance Service v1.0.0\n")
		fmt.Printf("Edit-distance, q-gram, and Jaro-Winkler metrics with parallel batch modes\n")
		return
	}

	settings := config.DefaultSettings()
	settings.Workers = *workers
	settings.MaxVectorLength = *maxVectorLength
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		for _, conflict := range conflicts {
			log.Printf("Invalid settings: %s", conflict)
		}
		os.Exit(1)
	}

	// Initialize the distance engine
	distanceEngine := engine.NewEngine(settings)
	defer distanceEngine.Close()

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, distanceEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
