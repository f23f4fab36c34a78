// Command shirt-freq reads a scraped roster CSV and writes the shirt-number
// frequency table per position.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/tmktstats/shirt-numbers/internal/rosterio"
	"github.com/tmktstats/shirt-numbers/internal/stats"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	in := getenv("IN_FILE", "scraped_data.csv")
	out := getenv("OUT_FILE", "shirt_frequency.csv")
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}
	topN, err := strconv.Atoi(getenv("TOP_N", "1"))
	if err != nil || topN < 1 {
		log.Fatalf("bad TOP_N: %q", getenv("TOP_N", "1"))
	}

	records, err := rosterio.ReadPlayerRecordsFile(in)
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}
	table, err := stats.LeagueFrequencyTable(records, topN)
	if err != nil {
		log.Fatalf("aggregate: %v", err)
	}
	if err := rosterio.WriteFrequencyFile(out, table); err != nil {
		log.Fatalf("write frequency table: %v", err)
	}
	log.Printf("OK: %d players -> %d frequency rows in %s", len(records), len(table), out)
}
