// Command archive loads the configured dataset, computes its summary and
// stores a snapshot row in Postgres. Run it after refreshing the dataset
// file to keep a history of what the dashboard served.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/archive"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/config"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/dataset"
)

func main() {
	list := flag.Int("list", 0, "list the N most recent snapshots instead of archiving")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.LoadArchive()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := archive.Open(ctx, appConfig.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open archive store: %v", err)
	}
	defer store.Close()

	if *list > 0 {
		snapshots, err := store.List(ctx, *list)
		if err != nil {
			log.Fatalf("Failed to list snapshots: %v", err)
		}
		for _, s := range snapshots {
			log.Printf("%s  %s  rows=%d  mean=%.2f  max=%.2f  (%s)",
				s.CreatedAt.Time().Format(time.RFC3339), s.Fingerprint.Short(),
				s.RowCount, s.MeanPrice, s.MaxPrice, s.SourceFile)
		}
		return
	}

	table, err := dataset.Load(appConfig.Data.DatasetFile)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	summary, err := analysis.Summarize(table)
	if err != nil {
		log.Fatalf("Failed to summarize dataset: %v", err)
	}

	snapshot := archive.SnapshotOf(table, summary)
	if err := store.Save(ctx, snapshot); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	log.Printf("Archived snapshot %s (%d rows, fingerprint %s)",
		snapshot.ID.String(), snapshot.RowCount, snapshot.Fingerprint.Short())
}
