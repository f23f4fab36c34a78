package tmkt

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractSquad parses one team page into player records in page order.
//
// The roster table (table.items) holds one td.posrela per player with the
// name and position, but the shirt-number badges (div.rn_nummer) are separate
// elements elsewhere in the row markup. The two lists carry no shared
// identifier, so pairing is positional: badges are collected in document
// order, reversed once, and popped from the tail, which pairs the i-th player
// row with the i-th badge top-to-bottom. A count mismatch between rows and
// badges means the page shape changed and returns an error rather than a
// silently truncated squad.
func ExtractSquad(html string) ([]PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse team page: %w", err)
	}

	table := doc.Find("table.items").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("squad table not found")
	}
	players := table.Find("td.posrela")

	var numbers []string
	doc.Find("div.rn_nummer").Each(func(_ int, badge *goquery.Selection) {
		numbers = append(numbers, strings.TrimSpace(badge.Text()))
	})
	if players.Length() != len(numbers) {
		return nil, fmt.Errorf("squad shape mismatch: %d player rows, %d shirt badges", players.Length(), len(numbers))
	}
	for i, j := 0, len(numbers)-1; i < j; i, j = i+1, j-1 {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}

	squad := make([]PlayerRecord, 0, players.Length())
	players.Each(func(_ int, cell *goquery.Selection) {
		name := strings.TrimSpace(cell.Find("td.hauptlink").First().Text())
		position := strings.TrimSpace(cell.Find("td").Last().Text())
		shirt := numbers[len(numbers)-1]
		numbers = numbers[:len(numbers)-1]
		if shirt == "-" {
			shirt = ""
		}
		squad = append(squad, PlayerRecord{Name: name, Position: position, ShirtNo: shirt})
	})
	return squad, nil
}
