// Package stats computes shirt-number frequency tables over scraped player
// records.
package stats

import "fmt"

// Code is a short position label used as the aggregation key.
type Code string

const (
	GK Code = "GK"
	CB Code = "CB"
	LB Code = "LB"
	RB Code = "RB"
	DM Code = "DM"
	CM Code = "CM"
	AM Code = "AM"
	LW Code = "LW"
	RW Code = "RW"
	SS Code = "SS"
	CF Code = "CF"
)

// enumeration order; frequency tables always come out in this order
var codes = []Code{GK, CB, LB, RB, DM, CM, AM, LW, RW, SS, CF}

// closed table mapping each code to the full label transfermarkt prints in
// squad tables; raw positions outside this table are never matched
var fullPosition = map[Code]string{
	GK: "Goalkeeper",
	CB: "Centre-Back",
	LB: "Left-Back",
	RB: "Right-Back",
	DM: "Defensive Midfield",
	CM: "Central Midfield",
	AM: "Attacking Midfield",
	LW: "Left Winger",
	RW: "Right Winger",
	SS: "Second Striker",
	CF: "Centre-Forward",
}

// Codes returns all position codes in enumeration order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// FullPosition resolves a code to its canonical full label. Codes outside the
// closed set are an error; callers must only pass known codes.
func FullPosition(c Code) (string, error) {
	full, ok := fullPosition[c]
	if !ok {
		return "", fmt.Errorf("unknown position code %q", c)
	}
	return full, nil
}
