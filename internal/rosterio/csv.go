// Package rosterio reads and writes the flat-file form of scraped rosters and
// frequency tables.
package rosterio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tmktstats/shirt-numbers/internal/stats"
	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

// WriteLeague writes the roster file: header name,position,shirt_no, one row
// per player, teams concatenated in collector order.
func WriteLeague(w io.Writer, squads []tmkt.TeamSquad) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "position", "shirt_no"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, squad := range squads {
		for _, p := range squad.Players {
			if err := cw.Write([]string{p.Name, p.Position, p.ShirtNo}); err != nil {
				return fmt.Errorf("write player row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLeagueFile writes the whole roster file at once; nothing is emitted
// incrementally during collection.
func WriteLeagueFile(path string, squads []tmkt.TeamSquad) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLeague(f, squads); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadPlayerRecords loads a roster file back into records. Columns are found
// by header name, so column order does not matter; empty shirt numbers come
// back as empty strings.
func ReadPlayerRecords(rd io.Reader) ([]tmkt.PlayerRecord, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1

	hdr, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	iName := idx("name")
	iPos := idx("position")
	iShirt := idx("shirt_no")
	if iName < 0 || iPos < 0 || iShirt < 0 {
		return nil, fmt.Errorf("required columns missing (need name, position, shirt_no)")
	}

	var records []tmkt.PlayerRecord
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		get := func(i int) string {
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		records = append(records, tmkt.PlayerRecord{
			Name:     get(iName),
			Position: get(iPos),
			ShirtNo:  get(iShirt),
		})
	}
	return records, nil
}

// ReadPlayerRecordsFile loads a roster file from disk.
func ReadPlayerRecordsFile(path string) ([]tmkt.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	records, err := ReadPlayerRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// WriteFrequency writes the aggregation file: header position,shirt_no,frequency.
func WriteFrequency(w io.Writer, rows []stats.FrequencyRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "shirt_no", "frequency"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{string(row.Position), strconv.Itoa(row.ShirtNo), strconv.Itoa(row.Count)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write frequency row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFrequencyFile writes a frequency table to disk.
func WriteFrequencyFile(path string, rows []stats.FrequencyRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteFrequency(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
