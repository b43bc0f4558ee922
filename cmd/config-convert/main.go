package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrissnell/darkdays/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML calendar/scenario file (default: built-in WCPSS data)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [-yaml <darkdays.yaml>] -sqlite <darkdays.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if SQLite file already exists
	if _, err := os.Stat(*sqliteFile); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
		fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
		os.Exit(1)
	}

	source := *yamlFile
	if source == "" {
		source = "built-in WCPSS data"
	}
	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", source)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	configData, err := loadYAML(*yamlFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse every literal now so a bad date never reaches the database
	if _, err := configData.BuildScenarios(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  Loaded %d calendars, %d scenarios\n", len(configData.Calendars), len(configData.Scenarios))

	if *dryRun {
		fmt.Println("DRY RUN - No changes will be made")
		printConfigSummary(configData)
		fmt.Println("DRY RUN complete - no database created")
		return
	}

	// Remove existing SQLite file if force is specified
	if *force {
		if err := os.Remove(*sqliteFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error removing existing SQLite file: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Creating SQLite database...\n")
	if err := saveToSQLite(*sqliteFile, configData); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration into SQLite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion completed successfully!\n")
	fmt.Printf("You can now use the SQLite backend with: -config-backend sqlite -config %s\n", *sqliteFile)
}

func loadYAML(yamlFile string) (*config.ConfigData, error) {
	if yamlFile == "" {
		return config.Default()
	}
	if _, err := os.Stat(yamlFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("YAML file does not exist: %s", yamlFile)
	}
	return config.NewYAMLProvider(yamlFile).LoadConfig()
}

func saveToSQLite(dbPath string, configData *config.ConfigData) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// The provider applies the embedded schema migrations on open
	provider, err := config.NewSQLiteProvider(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create SQLite provider: %w", err)
	}
	defer provider.Close()

	fmt.Printf("  Inserting %d calendars...\n", len(configData.Calendars))
	fmt.Printf("  Inserting %d scenarios...\n", len(configData.Scenarios))
	if err := provider.SaveConfig(configData); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("  Configuration successfully inserted into database\n")
	return nil
}

func printConfigSummary(configData *config.ConfigData) {
	fmt.Println("\nConfiguration Summary:")
	loc := configData.Location
	fmt.Printf("Location: %s (%.4f, %.4f) %s\n", loc.Name, loc.Latitude, loc.Longitude, loc.TimeZone)

	fmt.Printf("\nCalendars (%d):\n", len(configData.Calendars))
	for _, c := range configData.Calendars {
		fmt.Printf("  - %s: %s to %s, %d holidays\n", c.Name, c.Start, c.End, len(c.Holidays))
	}

	fmt.Printf("\nScenarios (%d):\n", len(configData.Scenarios))
	for _, s := range configData.Scenarios {
		fmt.Printf("  - %s: %s at %s\n", s.Label, s.Calendar, s.Bell)
	}
}
