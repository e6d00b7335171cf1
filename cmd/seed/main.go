package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/config"
	mongodoc "github.com/feastmap/storefront-api/internal/infrastructure/mongo"
)

type seedOptions struct {
	storeCount      int
	maxReviews      int
	dropCollections bool
	randomSeed      int64
}

var sampleNames = []string{
	"Beanline Coffee",
	"Juniper & Rye",
	"The Copper Kettle",
	"Harbour Lights Diner",
	"Grain Loft Bakery",
	"Marigold Kitchen",
	"Night Owl Noodles",
	"Cedar Street Deli",
	"Two Spoons Gelato",
	"The Brine Room",
}

var samplePhrases = []string{
	"Quick service and generous portions.",
	"Would come back for the coffee alone.",
	"A bit noisy at lunch but worth it.",
	"Staff remembered my order from last week.",
	"Decent, nothing spectacular.",
	"Best spot on the street by a mile.",
}

var sampleTags = []string{"wifi", "family-friendly", "vegetarian", "open-late", "licensed", "cheap"}

func main() {
	_ = godotenv.Load()

	opts := parseFlags()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	database := client.Database(cfg.MongoDatabase)
	if opts.dropCollections {
		for _, name := range []string{cfg.StoreCollection, cfg.ReviewCollection} {
			if err := database.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("コレクション %s の削除に失敗: %v", name, err)
			}
		}
	}

	storeRepo := mongodoc.NewStoreRepository(database, cfg.StoreCollection)
	reviewRepo := mongodoc.NewReviewRepository(database, cfg.ReviewCollection)
	if err := storeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("店舗インデックスの作成に失敗: %v", err)
	}
	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("レビューインデックスの作成に失敗: %v", err)
	}

	// Going through the services keeps seeded data on the same slug
	// derivation and validation path as real traffic.
	storeService := application.NewStoreService(storeRepo)
	reviewService := application.NewReviewService(storeRepo, reviewRepo)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer seedCancel()

	totalReviews := 0
	for i := 0; i < opts.storeCount; i++ {
		name := sampleNames[i%len(sampleNames)]

		store, err := storeService.Create(seedCtx, application.CreateStoreCommand{
			Name:        name,
			Description: fmt.Sprintf("%s — seeded store #%d", name, i+1),
			Tags:        pickTags(rng),
			Coordinates: jitterCoordinates(rng, -6.2603, 53.3498),
			Address:     fmt.Sprintf("%d Sample Street", rng.Intn(200)+1),
			AuthorID:    fmt.Sprintf("seed-author-%d", rng.Intn(5)+1),
		})
		if err != nil {
			log.Fatalf("店舗 %q の作成に失敗: %v", name, err)
		}

		reviewCount := rng.Intn(opts.maxReviews + 1)
		for j := 0; j < reviewCount; j++ {
			_, err := reviewService.Submit(seedCtx, application.SubmitReviewCommand{
				StoreID:  store.ID,
				AuthorID: fmt.Sprintf("seed-reviewer-%d", rng.Intn(20)+1),
				Rating:   float64(rng.Intn(5) + 1),
				Text:     samplePhrases[rng.Intn(len(samplePhrases))],
			})
			if err != nil {
				log.Fatalf("店舗 %q へのレビュー投入に失敗: %v", store.Slug, err)
			}
			totalReviews++
		}

		log.Printf("seeded store %-24s slug=%s reviews=%d", store.Name, store.Slug, reviewCount)
	}

	log.Printf("done: %d stores, %d reviews", opts.storeCount, totalReviews)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.storeCount, "stores", 20, "number of stores to create")
	flag.IntVar(&opts.maxReviews, "max-reviews", 5, "maximum reviews per store")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop store/review collections first")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
	return opts
}

// pickTags selects a random subset, duplicates allowed, mirroring what real
// submissions look like.
func pickTags(rng *rand.Rand) []string {
	count := rng.Intn(4)
	tags := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tags = append(tags, sampleTags[rng.Intn(len(sampleTags))])
	}
	return tags
}

// jitterCoordinates spreads stores a few kilometres around a city centre.
func jitterCoordinates(rng *rand.Rand, lng, lat float64) []float64 {
	return []float64{
		lng + (rng.Float64()-0.5)*0.08,
		lat + (rng.Float64()-0.5)*0.05,
	}
}
