// Command shirt-scraper collects player rosters for the configured leagues
// from transfermarkt and writes one CSV per league. When TABLE_NAME is set
// the rows are also ingested into DynamoDB.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tmktstats/shirt-numbers/internal/rosterio"
	"github.com/tmktstats/shirt-numbers/internal/store"
	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

// Europe's top five leagues, scraped in this order.
var leagues = []struct {
	Name string
	URL  string
}{
	{"Premier_League", "https://www.transfermarkt.com/premier-league/startseite/wettbewerb/GB1"},
	{"LaLiga", "https://www.transfermarkt.com/primera-division/startseite/wettbewerb/ES1"},
	{"Bundesliga", "https://www.transfermarkt.com/bundesliga/startseite/wettbewerb/L1"},
	{"Serie_A", "https://www.transfermarkt.com/serie-a/startseite/wettbewerb/IT1"},
	{"Ligue_1", "https://www.transfermarkt.com/ligue-1/startseite/wettbewerb/FR1"},
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	ctx := context.Background()

	season, err := strconv.Atoi(getenv("SEASON", "2023"))
	if err != nil {
		log.Fatalf("bad SEASON: %v", err)
	}
	outDir := getenv("OUT_DIR", ".")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create output dir %s: %v", outDir, err)
	}

	var ddbc *ddb.Client
	table := os.Getenv("TABLE_NAME")
	if table != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("load aws config: %v", err)
		}
		ddbc = ddb.NewFromConfig(cfg)
	}

	f := tmkt.NewFetcher(tmkt.DefaultHeaders())
	for _, lg := range leagues {
		log.Printf("collecting %s season %d", lg.Name, season)
		squads, err := f.CollectLeague(ctx, lg.URL, season)
		if err != nil {
			log.Printf("skipping league %s: %v", lg.Name, err)
			continue
		}

		out := filepath.Join(outDir, lg.Name+".csv")
		if err := rosterio.WriteLeagueFile(out, squads); err != nil {
			log.Fatalf("write %s: %v", out, err)
		}
		players := 0
		for _, s := range squads {
			players += len(s.Players)
		}
		log.Printf("%s: %d teams, %d players -> %s", lg.Name, len(squads), players, out)

		if ddbc != nil {
			if err := store.PutPlayerRows(ctx, ddbc, table, lg.Name, season, squads); err != nil {
				log.Fatalf("ingest %s into %s: %v", lg.Name, table, err)
			}
			log.Printf("OK ingest: %d players into %s", players, table)
		}
	}
}
