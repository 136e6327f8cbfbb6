package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lightweight view of the stored catalog, enough to sanity-check the blob
// without importing the full entity package.
type catalogData struct {
	Talents     []json.RawMessage `json:"talents"`
	ArmorPieces []json.RawMessage `json:"armor_pieces"`
	Charms      []json.RawMessage `json:"charms"`
	Jewels      []json.RawMessage `json:"jewels"`
	Weapons     []json.RawMessage `json:"weapons"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	data, err := client.Get(ctx, "catalog:data").Result()
	if err == redis.Nil {
		fmt.Println("No catalog stored (catalog:data missing). Run a scrape first.")
		return
	}
	if err != nil {
		log.Fatal("Error reading catalog:data:", err)
	}

	var cat catalogData
	if err := json.Unmarshal([]byte(data), &cat); err != nil {
		fmt.Printf("✗ Corrupted JSON in catalog:data: %v\n", err)

		fmt.Print("\nDo you want to DELETE the corrupted catalog? (yes/no): ")
		var response string
		fmt.Scanln(&response)

		if response == "yes" {
			if err := client.Del(ctx, "catalog:data", "catalog:saved_at").Err(); err != nil {
				log.Fatal("Failed to delete catalog keys:", err)
			}
			fmt.Println("Deleted catalog:data and catalog:saved_at")
		} else {
			fmt.Println("Aborted - no changes made")
		}
		return
	}

	fmt.Printf("Catalog OK: %d talents, %d armor pieces, %d charms, %d jewels, %d weapons\n",
		len(cat.Talents), len(cat.ArmorPieces), len(cat.Charms), len(cat.Jewels), len(cat.Weapons))

	savedAt, err := client.Get(ctx, "catalog:saved_at").Result()
	switch {
	case err == redis.Nil:
		fmt.Println("Warning: catalog:saved_at is missing")
	case err != nil:
		fmt.Printf("Error reading catalog:saved_at: %v\n", err)
	default:
		if ts, parseErr := time.Parse(time.RFC3339, savedAt); parseErr == nil {
			fmt.Printf("Scraped at %s (%s ago)\n", ts.Format(time.RFC3339), time.Since(ts).Round(time.Minute))
		} else {
			fmt.Printf("Warning: unparseable catalog:saved_at %q\n", savedAt)
		}
	}
}
