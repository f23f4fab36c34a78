package tmkt

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LeagueURLForSeason appends the season selector unless the URL already
// carries one. Without it the site serves the current season's page.
func LeagueURLForSeason(leagueURL string, season int) string {
	if strings.Contains(leagueURL, "?saison_id=") {
		return leagueURL
	}
	return fmt.Sprintf("%s/plus/?saison_id=%d", leagueURL, season)
}

// ExtractTeamURLs pulls the team page links out of a league roster page, in
// document order, absolutized against BaseURL.
func ExtractTeamURLs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse league page: %w", err)
	}
	var urls []string
	doc.Find("td.hauptlink.no-border-links a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		urls = append(urls, absolutize(href))
	})
	if len(urls) == 0 {
		return nil, fmt.Errorf("no team links found on league page")
	}
	return urls, nil
}

func absolutize(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return BaseURL + href
	}
	return BaseURL + "/" + href
}

// LeagueTeamURLs fetches the league page for season and extracts team URLs.
func (f *Fetcher) LeagueTeamURLs(ctx context.Context, leagueURL string, season int) ([]string, error) {
	html, err := f.GetText(ctx, LeagueURLForSeason(leagueURL, season))
	if err != nil {
		return nil, fmt.Errorf("fetch league page: %w", err)
	}
	return ExtractTeamURLs(html)
}
