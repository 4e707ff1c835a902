// Command clipscan walks a directory tree of audio clips, groups files
// sharing a base name into logical clips, and records the clips and
// their embedded tag metadata in a SQLite database.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"clipscan/internal/catalog"
	"clipscan/internal/config"
	"clipscan/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: XDG config dir, then ./config.toml)")
	dryRun := flag.Bool("dry-run", false, "scan and report without writing to the database")
	flag.Parse()

	log.SetFlags(0)

	if err := run(*configPath, *dryRun); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(configPath string, dryRun bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.ClipsDirectory == "" {
		log.Println("No clips directory configured, nothing to do")
		return nil
	}

	cat, err := catalog.Scan(cfg.ClipsDirectory)
	if err != nil {
		return err
	}
	log.Printf("Found %d clips under %s", cat.Len(), cfg.ClipsDirectory)

	if dryRun || !cfg.HasDatabase() {
		printCatalog(cat)
		return nil
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	sum := st.WriteCatalog(cat)
	for _, key := range sum.MissingTags {
		log.Printf("%s does not have any audio tag metadata", key)
	}
	for _, f := range sum.Failures {
		log.Printf("Failed to write %s: %v", f.Key, f.Err)
	}
	log.Printf("Wrote %d clips (%d without tags)",
		sum.Processed-len(sum.Failures), len(sum.MissingTags))

	if n := len(sum.Failures); n > 0 {
		return fmt.Errorf("%d clips failed to write", n)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// printCatalog lists the scanned clips without touching the database.
func printCatalog(cat *catalog.Catalog) {
	for _, clip := range cat.Clips() {
		tagged := "no tags"
		if clip.Tags != nil {
			tagged = "tagged"
		}
		log.Printf("  %s [%s] %s", clip.Key, strings.Join(clip.Formats, " "), tagged)
	}
}
