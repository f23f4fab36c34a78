package ath

import (
	"fmt"
	"strings"

	"github.com/tmktstats/shirt-numbers/internal/stats"
)

// FrequencyQuery builds the CTAS statement that materializes the top-n shirt
// numbers per position out of a roster table with columns
// (name, position, shirt_no). Blank shirt values are excluded, matching the
// in-memory aggregator. Athena has no insertion-order tie-break, so equal
// counts fall back to the smaller shirt number; the in-memory path stays
// authoritative for exact parity with the CSV pipeline.
func FrequencyQuery(outTable, rosterTable string, n int) string {
	labels := make([]string, 0, len(stats.Codes()))
	for _, code := range stats.Codes() {
		full, _ := stats.FullPosition(code)
		labels = append(labels, fmt.Sprintf("('%s', '%s')", code, strings.ReplaceAll(full, "'", "''")))
	}

	return fmt.Sprintf(`CREATE TABLE %s WITH (format = 'PARQUET') AS
WITH codes(code, full_position) AS (
  SELECT * FROM (VALUES %s)
),
counted AS (
  SELECT c.code,
         CAST(r.shirt_no AS integer) AS shirt_no,
         COUNT(*) AS frequency
  FROM codes c
  JOIN %s r ON r.position = c.full_position
  WHERE r.shirt_no <> '' AND r.shirt_no IS NOT NULL
  GROUP BY c.code, CAST(r.shirt_no AS integer)
),
ranked AS (
  SELECT code, shirt_no, frequency,
         rank() OVER (PARTITION BY code ORDER BY frequency DESC, shirt_no ASC) AS rnk
  FROM counted
)
SELECT c.code AS position,
       COALESCE(r.shirt_no, 0) AS shirt_no,
       COALESCE(r.frequency, 0) AS frequency
FROM codes c
LEFT JOIN ranked r ON r.code = c.code AND r.rnk <= %d`,
		outTable, strings.Join(labels, ", "), rosterTable, n)
}

// DropQuery removes a previous materialization so the CTAS can run again.
func DropQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}
