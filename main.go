package main

import (
	"fmt"
	"log"
	"os"

	"github.com/qazaqkitap/qazaqkitap/internal/assets"
	"github.com/qazaqkitap/qazaqkitap/internal/config"
	"github.com/qazaqkitap/qazaqkitap/internal/database"
	"github.com/qazaqkitap/qazaqkitap/internal/database/books"
	"github.com/qazaqkitap/qazaqkitap/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]

	switch command {
	case "seed":
		cfg := config.NewConfig()
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.SeedCatalog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Println("Catalog seeded")

	case "check-assets":
		cfg := config.NewConfig()
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		checker := assets.NewChecker(books.NewRepository(db.DB), cfg.Uploads.CoversDir, cfg.Uploads.PdfsDir)
		report, err := checker.Check()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, m := range report.Missing {
			fmt.Printf("missing %s for book %d: %s\n", m.Kind, m.BookID, m.Path)
		}
		fmt.Printf("checked %d books, %d missing files\n", report.BooksChecked, len(report.Missing))
		if !report.OK() {
			os.Exit(1)
		}

	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve         Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  seed          Populate the catalog tables and exit\n")
	fmt.Fprintf(os.Stderr, "  check-assets  Report cover and PDF files missing from the upload directories\n")
	fmt.Fprintf(os.Stderr, "  version       Print the build version\n")
}
