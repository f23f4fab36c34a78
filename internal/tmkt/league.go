package tmkt

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// polite delay between team requests (env TEAM_DELAY_MS), default 300ms
func teamDelay() time.Duration {
	ms := 300
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEAM_DELAY_MS"))); err == nil && v >= 0 && v <= 5000 {
		ms = v
	}
	return time.Duration(ms) * time.Millisecond
}

// CollectLeague walks every team of a league for one season and parses its
// squad. A team that fails to fetch or parse is logged and omitted from the
// result; the remaining teams keep their relative order. Only a failure to
// list the teams at all aborts the collection.
func (f *Fetcher) CollectLeague(ctx context.Context, leagueURL string, season int) ([]TeamSquad, error) {
	teamURLs, err := f.LeagueTeamURLs(ctx, leagueURL, season)
	if err != nil {
		return nil, fmt.Errorf("collect league %s: %w", leagueURL, err)
	}
	delay := teamDelay()

	squads := make([]TeamSquad, 0, len(teamURLs))
	for i, teamURL := range teamURLs {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return squads, ctx.Err()
			case <-time.After(delay):
			}
		}
		log.Printf("processing team %d/%d: %s", i+1, len(teamURLs), teamURL)
		html, err := f.GetText(ctx, teamURL)
		if err != nil {
			log.Printf("skipping team %s: %v", teamURL, err)
			continue
		}
		players, err := ExtractSquad(html)
		if err != nil {
			log.Printf("skipping team %s: %v", teamURL, err)
			continue
		}
		squads = append(squads, TeamSquad{URL: teamURL, Players: players})
	}
	return squads, nil
}
