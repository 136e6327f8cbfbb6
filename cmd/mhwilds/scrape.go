package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/DSestu/MH-Wilds-Tools/internal/clients/kiranico"
	"github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/scrape"
	redisclient "github.com/DSestu/MH-Wilds-Tools/internal/redis"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
)

var (
	scrapeBaseURL     string
	scrapeLocale      string
	scrapeConcurrency int
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [talents|armors|charms|jewels|weapons|all]...",
	Short: "Refresh the catalog from kiranico.com",
	Long: `Scrape fetches talents, armor, charms, jewels, and weapons from the
kiranico data site and replaces the stored catalog. Naming categories
refreshes only those sections inside the stored catalog; the previous
catalog stays in place if any fetch or the integrity check fails.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeBaseURL, "base-url", kiranico.DefaultBaseURL, "kiranico site root")
	scrapeCmd.Flags().StringVar(&scrapeLocale, "locale", "en", "site language segment")
	scrapeCmd.Flags().IntVar(&scrapeConcurrency, "concurrency", 8, "parallel page fetches")
}

func runScrape(cmd *cobra.Command, args []string) error {
	categories, err := scrape.ParseCategories(args)
	if err != nil {
		return err
	}

	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	kiraClient, err := kiranico.New(&kiranico.Config{
		BaseURL:     scrapeBaseURL,
		Locale:      scrapeLocale,
		Concurrency: scrapeConcurrency,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return err
	}
	service, err := scrape.NewOrchestrator(&scrape.Config{
		Kiranico:    kiraClient,
		CatalogRepo: repo,
	})
	if err != nil {
		return err
	}

	out, err := service.RefreshCatalog(cmd.Context(), &scrape.RefreshCatalogInput{Categories: categories})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Catalog refreshed: %d talents, %d armor pieces, %d charms, %d jewels, %d weapons\n",
		len(out.Catalog.Talents),
		len(out.Catalog.ArmorPieces),
		len(out.Catalog.Charms),
		len(out.Catalog.Jewels),
		len(out.Catalog.Weapons),
	)
	return nil
}
