package tmkt

// PlayerRecord is one row scraped from a squad page. ShirtNo stays a string:
// transfermarkt shows "-" or nothing for players without an assigned number,
// and that distinction is kept until aggregation time.
type PlayerRecord struct {
	Name     string
	Position string // raw label as shown on the page, e.g. "Centre-Back"
	ShirtNo  string
}

// TeamSquad is one team's parsed roster in page order.
type TeamSquad struct {
	URL     string
	Players []PlayerRecord
}
