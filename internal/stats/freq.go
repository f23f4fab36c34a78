package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

// FrequencyRow is one entry of the shirt-number frequency table. A row of
// (code, 0, 0) means no player record matched the position.
type FrequencyRow struct {
	Position Code
	ShirtNo  int
	Count    int
}

// TopShirts returns the n most frequent shirt numbers among records whose
// position equals the canonical label for code. Ties are broken by
// first-encountered order among the filtered records, not by numeric order.
// Records with a blank or non-numeric shirt value are not counted. When
// nothing matches, the result is the single sentinel row (code, 0, 0),
// regardless of n.
func TopShirts(records []tmkt.PlayerRecord, code Code, n int) ([]FrequencyRow, error) {
	position, err := FullPosition(code)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("top shirts for %s: n must be >= 1, got %d", code, n)
	}

	counts := make(map[int]int)
	var order []int // shirt numbers in order of first appearance
	for _, r := range records {
		if r.Position != position {
			continue
		}
		shirt, err := strconv.Atoi(r.ShirtNo)
		if err != nil {
			continue
		}
		if counts[shirt] == 0 {
			order = append(order, shirt)
		}
		counts[shirt]++
	}
	if len(order) == 0 {
		return []FrequencyRow{{Position: code}}, nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if n > len(order) {
		n = len(order)
	}
	rows := make([]FrequencyRow, 0, n)
	for _, shirt := range order[:n] {
		rows = append(rows, FrequencyRow{Position: code, ShirtNo: shirt, Count: counts[shirt]})
	}
	return rows, nil
}

// LeagueFrequencyTable runs TopShirts for every position code in enumeration
// order and concatenates the results. With n=1 the table has exactly one row
// per code; with n>1 each code contributes up to n rows.
func LeagueFrequencyTable(records []tmkt.PlayerRecord, n int) ([]FrequencyRow, error) {
	var table []FrequencyRow
	for _, code := range Codes() {
		rows, err := TopShirts(records, code, n)
		if err != nil {
			return nil, err
		}
		table = append(table, rows...)
	}
	return table, nil
}
