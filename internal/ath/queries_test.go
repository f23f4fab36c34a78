package ath

import (
	"strings"
	"testing"
)

func TestFrequencyQuery_CoversAllPositions(t *testing.T) {
	sql := FrequencyQuery("shirt_frequency", "shirt_rosters", 1)
	for _, want := range []string{
		"CREATE TABLE shirt_frequency",
		"FROM codes c",
		"('GK', 'Goalkeeper')",
		"('CF', 'Centre-Forward')",
		"rank() OVER (PARTITION BY code",
		"rnk <= 1",
		"JOIN shirt_rosters r",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("query missing %q:\n%s", want, sql)
		}
	}
	// unmatched positions must still come out as sentinel rows
	if !strings.Contains(sql, "LEFT JOIN ranked") || !strings.Contains(sql, "COALESCE(r.shirt_no, 0)") {
		t.Error("query must keep positions with no matching players")
	}
}

func TestDropQuery(t *testing.T) {
	if got := DropQuery("t"); got != "DROP TABLE IF EXISTS t" {
		t.Errorf("got %q", got)
	}
}
