// Package main provides a tool to load the album and critic review catalog
// into the database from JSON export files.
//
// Usage:
//
//	go run ./cmd/seed --db ~/JazzMate/jazzmate.db --albums albums.json --critics critics.json
package main

import (
	"context"
	"encoding/json/v2"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heeyoungha/jazzmateShop/internal/domain"
	"github.com/heeyoungha/jazzmateShop/internal/id"
	"github.com/heeyoungha/jazzmateShop/internal/store/sqlite"
)

var (
	dbPath      = flag.String("db", os.ExpandEnv("$HOME/JazzMate/jazzmate.db"), "Path to the SQLite database file")
	albumsFile  = flag.String("albums", "", "Path to an albums JSON file")
	criticsFile = flag.String("critics", "", "Path to a critic reviews JSON file")
)

func main() {
	flag.Parse()

	if *albumsFile == "" && *criticsFile == "" {
		log.Fatal("Nothing to do: pass --albums and/or --critics")
	}

	fmt.Printf("Opening database at: %s\n", *dbPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(*dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *albumsFile != "" {
		n, err := seedAlbums(ctx, s, *albumsFile)
		if err != nil {
			log.Fatalf("Failed to seed albums: %v", err)
		}
		fmt.Printf("Loaded %d albums\n", n)
	}

	if *criticsFile != "" {
		n, err := seedCritics(ctx, s, *criticsFile)
		if err != nil {
			log.Fatalf("Failed to seed critic reviews: %v", err)
		}
		fmt.Printf("Loaded %d critic reviews\n", n)
	}
}

func seedAlbums(ctx context.Context, s *sqlite.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var albums []domain.Album
	if err := json.Unmarshal(data, &albums); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	now := time.Now().UTC()
	for i := range albums {
		a := &albums[i]
		if a.ID == "" {
			a.ID, err = id.Generate("alb")
			if err != nil {
				return i, err
			}
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
		if err := s.CreateAlbum(ctx, a); err != nil {
			return i, fmt.Errorf("album %q: %w", a.AlbumTitle, err)
		}
	}
	return len(albums), nil
}

func seedCritics(ctx context.Context, s *sqlite.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var reviews []domain.CriticsReview
	if err := json.Unmarshal(data, &reviews); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	now := time.Now().UTC()
	for i := range reviews {
		c := &reviews[i]
		if c.ID == "" {
			c.ID, err = id.Generate("cr")
			if err != nil {
				return i, err
			}
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if err := s.CreateCriticsReview(ctx, c); err != nil {
			return i, fmt.Errorf("critic review %q: %w", c.Title, err)
		}
	}
	return len(reviews), nil
}
