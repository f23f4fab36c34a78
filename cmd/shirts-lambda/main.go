// Lambda entrypoint for scheduled runs. MODE selects the work:
//
//	scrape            collect one league and ingest players into DynamoDB
//	frequency         read players back from DynamoDB, compute the frequency
//	                  table in memory and write it to FREQ_TABLE_NAME
//	athena_frequency  re-materialize the frequency table with Athena SQL over
//	                  the Glue roster table
//	all               scrape then frequency
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tmktstats/shirt-numbers/internal/ath"
	"github.com/tmktstats/shirt-numbers/internal/stats"
	"github.com/tmktstats/shirt-numbers/internal/store"
	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil {
		return v
	}
	return def
}

func handler(ctx context.Context) error {
	mode := strings.ToLower(getenv("MODE", "all"))
	season := envInt("SEASON", 2023)
	topN := envInt("TOP_N", 1)
	leagueName := mustenv("LEAGUE_NAME") // e.g. Premier_League
	leagueURL := mustenv("LEAGUE_URL")

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	ddbc := ddb.NewFromConfig(cfg)

	if mode == "scrape" || mode == "all" {
		rosterTable := mustenv("ROSTER_TABLE_NAME")
		f := tmkt.NewFetcher(tmkt.DefaultHeaders())
		squads, err := f.CollectLeague(ctx, leagueURL, season)
		if err != nil {
			return err
		}
		if err := store.PutPlayerRows(ctx, ddbc, rosterTable, leagueName, season, squads); err != nil {
			return err
		}
		players := 0
		for _, s := range squads {
			players += len(s.Players)
		}
		log.Printf("OK scrape: %d teams, %d players into %s for %s season %d",
			len(squads), players, rosterTable, leagueName, season)
	}

	if mode == "frequency" || mode == "all" {
		rosterTable := mustenv("ROSTER_TABLE_NAME")
		freqTable := mustenv("FREQ_TABLE_NAME")
		records, err := store.LoadPlayerRecords(ctx, ddbc, rosterTable, leagueName, season)
		if err != nil {
			return err
		}
		table, err := stats.LeagueFrequencyTable(records, topN)
		if err != nil {
			return err
		}
		if err := store.PutFrequencyRows(ctx, ddbc, freqTable, leagueName, season, table); err != nil {
			return err
		}
		log.Printf("OK frequency: %d rows into %s for %s season %d", len(table), freqTable, leagueName, season)
	}

	if mode == "athena_frequency" {
		runner := &ath.Runner{
			Client:    athena.NewFromConfig(cfg),
			Workgroup: mustenv("ATHENA_WORKGROUP"),
			Database:  mustenv("ATHENA_DB"),
			OutputS3:  mustenv("ATHENA_OUTPUT_S3"),
			Logger:    log.Default(),
		}
		outTable := getenv("ATHENA_FREQ_TABLE", "shirt_frequency")
		rosterTable := getenv("ATHENA_ROSTER_TABLE", "shirt_rosters")
		if _, err := runner.ExecAndWait(ctx, ath.DropQuery(outTable)); err != nil {
			return err
		}
		if _, err := runner.ExecAndWait(ctx, ath.FrequencyQuery(outTable, rosterTable, topN)); err != nil {
			return err
		}
		n, err := runner.CountRows(ctx, outTable)
		if err != nil {
			return err
		}
		log.Printf("OK athena: %s materialized with %d rows", outTable, n)
	}

	return nil
}

func main() {
	lambda.Start(handler)
}
