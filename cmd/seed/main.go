package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/JaimeStill/task-manager/internal/config"
	"github.com/JaimeStill/task-manager/pkg/database"
	"github.com/JaimeStill/task-manager/pkg/docstore"
	"github.com/joho/godotenv"
)

func main() {
	var (
		all  = flag.Bool("all", false, "Run all seeders")
		only = flag.String("seeder", "", "Run a single seeder by name")
		file = flag.String("file", "", "External seed file for -seeder (overrides embedded)")
		list = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && *only == "" {
		fmt.Println("usage: seed [-all | -seeder <name> [-file <path>]] [-list]")
		flag.PrintDefaults()
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("dotenv load failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}

	store, err := connect(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}
	defer store.Close(context.Background())

	ctx := context.Background()

	names := []string{*only}
	if *all {
		names = names[:0]
		for _, s := range listSeeders() {
			names = append(names, s.Name())
		}
	} else if *file != "" {
		seeder, ok := getSeeder(*only)
		if !ok {
			log.Fatalf("seeder not found: %s", *only)
		}
		if f, ok := seeder.(interface{ SetFile(string) }); ok {
			f.SetFile(*file)
		}
	}

	for _, name := range names {
		n, err := runSeeder(ctx, store, name)
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("%s: %d inserted\n", name, n)
	}
}

// connect opens and pings the configured store. The connection timeout
// bounds only these two steps, not the seeding that follows.
func connect(cfg *database.Config) (docstore.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := store.Ping(ctx); err != nil {
		store.Close(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return store, nil
}
