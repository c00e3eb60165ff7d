package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// Required columns of a football-data.co.uk results file. Extra columns
// (odds, referee, shot counts) are ignored.
var requiredColumns = []string{"Date", "HomeTeam", "AwayTeam", "FTHG", "FTAG", "FTR"}

// Accepted date layouts, tried in order. football-data files switched from
// two-digit to four-digit years mid-archive.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02/01/06"}

// ReadMatches reads a cleaned match table from CSV. The first record is the
// header; required columns are located by name, so column order is free.
func ReadMatches(r io.Reader) ([]models.MatchRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header record")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var matches []models.MatchRecord
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		match, err := parseMatch(record, colIndex)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func parseMatch(record []string, colIndex map[string]int) (models.MatchRecord, error) {
	field := func(name string) (string, error) {
		i := colIndex[name]
		if i >= len(record) {
			return "", fmt.Errorf("record too short: missing column %q", name)
		}
		return record[i], nil
	}

	var m models.MatchRecord

	rawDate, err := field("Date")
	if err != nil {
		return m, err
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return m, err
	}
	m.Date = date

	if m.HomeTeam, err = field("HomeTeam"); err != nil {
		return m, err
	}
	if m.AwayTeam, err = field("AwayTeam"); err != nil {
		return m, err
	}

	if m.HomeGoals, err = parseGoals(record, colIndex, "FTHG"); err != nil {
		return m, err
	}
	if m.AwayGoals, err = parseGoals(record, colIndex, "FTAG"); err != nil {
		return m, err
	}

	rawResult, err := field("FTR")
	if err != nil {
		return m, err
	}
	m.Result = models.Result(rawResult)

	return m, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func parseGoals(record []string, colIndex map[string]int, name string) (int, error) {
	i := colIndex[name]
	if i >= len(record) {
		return 0, fmt.Errorf("record too short: missing column %q", name)
	}
	goals, err := strconv.Atoi(record[i])
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, record[i])
	}
	return goals, nil
}

// WriteFeatures writes feature rows as a flat CSV table: the original match
// columns followed by one column per rolling aggregate and the rating block.
// Aggregates with no history are written as empty cells.
func WriteFeatures(w io.Writer, rows []models.FeatureRow, windows []int) error {
	writer := csv.NewWriter(w)

	header := []string{"Date", "HomeTeam", "AwayTeam", "FTHG", "FTAG", "FTR"}
	for _, window := range windows {
		for _, side := range []string{"home", "away"} {
			for _, stat := range []string{"gf", "ga", "pts"} {
				header = append(header, fmt.Sprintf("%s_%s_avg_w%d", side, stat, window))
			}
		}
	}
	header = append(header, "home_elo", "away_elo", "elo_diff", "home_exp", "away_exp")

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		record, err := featureRecord(row, windows)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func featureRecord(row models.FeatureRow, windows []int) ([]string, error) {
	m := row.Match
	record := []string{
		m.Date.Format("2006-01-02"),
		m.HomeTeam,
		m.AwayTeam,
		strconv.Itoa(m.HomeGoals),
		strconv.Itoa(m.AwayGoals),
		string(m.Result),
	}

	formByWindow := make(map[int]models.WindowForm, len(row.Form))
	for _, form := range row.Form {
		formByWindow[form.Window] = form
	}

	for _, window := range windows {
		form, ok := formByWindow[window]
		if !ok {
			return nil, fmt.Errorf("no aggregates for window %d", window)
		}
		record = append(record,
			nullCell(form.HomeGoalsForAvg),
			nullCell(form.HomeGoalsAgainstAvg),
			nullCell(form.HomePointsAvg),
			nullCell(form.AwayGoalsForAvg),
			nullCell(form.AwayGoalsAgainstAvg),
			nullCell(form.AwayPointsAvg),
		)
	}

	record = append(record,
		floatCell(row.Rating.HomeElo),
		floatCell(row.Rating.AwayElo),
		floatCell(row.Rating.EloDiff),
		floatCell(row.Rating.HomeExp),
		floatCell(row.Rating.AwayExp),
	)

	return record, nil
}

func nullCell(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func floatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
