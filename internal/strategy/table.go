package strategy

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
)

//go:embed basic_strategy.csv
var defaultChart string

// numColumns is one cell per dealer up-card: 2-9, T, A.
const numColumns = 10

type rowKind int

const (
	hardRow rowKind = iota
	softRow
	pairRow
)

func (k rowKind) String() string {
	switch k {
	case softRow:
		return "soft"
	case pairRow:
		return "pair"
	default:
		return "hard"
	}
}

// rowKey identifies one strategy row: a hard total, a soft total, or a
// pair (keyed by the paired rank's base value, 1 for aces).
type rowKey struct {
	kind  rowKind
	value int
}

func (k rowKey) String() string {
	switch k.kind {
	case softRow:
		return fmt.Sprintf("soft_%d", k.value)
	case pairRow:
		switch k.value {
		case 1:
			return "A,A"
		case 10:
			return "T,T"
		default:
			return fmt.Sprintf("%d,%d", k.value, k.value)
		}
	default:
		return strconv.Itoa(k.value)
	}
}

// Table is a validated, closed strategy mapping. It is loaded and checked
// once; lookups at play time cannot fail on well-formed keys.
type Table struct {
	name string
	rows map[rowKey][numColumns]Action
}

// Name returns the source the table was loaded from.
func (t *Table) Name() string { return t.name }

// columnIndex maps a dealer up-card rank to its table column.
func columnIndex(r deck.Rank) int {
	if r == deck.Ace {
		return numColumns - 1
	}
	return r.BaseValue() - 2
}

// Default returns the embedded basic strategy chart. The embedded chart
// is validated by tests, so a parse failure here is a build defect.
func Default() *Table {
	t, err := Parse(strings.NewReader(defaultChart), "basic_strategy.csv (embedded)")
	if err != nil {
		panic(fmt.Sprintf("embedded strategy chart invalid: %v", err))
	}
	return t
}

// Load reads and validates a strategy table from a CSV file.
func Load(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open strategy file: %w", err)
	}
	defer f.Close()
	return Parse(f, filename)
}

// Parse reads and validates a strategy table from CSV. Header row is
// `Hand,2,3,4,5,6,7,8,9,T,A`; rows are keyed by hard total (5-20), soft
// total (soft_13-soft_21) or pair rank (2,2 - A,A). Every malformation is
// a ConfigurationError here, never recovered at play time.
func Parse(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // length validated per row for better errors

	records, err := cr.ReadAll()
	if err != nil {
		return nil, rules.NewConfigurationError(name, "malformed CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, rules.NewConfigurationError(name, "empty strategy file")
	}

	if err := validateHeader(name, records[0]); err != nil {
		return nil, err
	}

	t := &Table{name: name, rows: make(map[rowKey][numColumns]Action)}
	for i, record := range records[1:] {
		line := i + 2
		if len(record) != numColumns+1 {
			return nil, rules.NewConfigurationError(name,
				"row %d: want %d cells, got %d", line, numColumns+1, len(record))
		}
		key, err := parseRowKey(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, rules.NewConfigurationError(name, "row %d: %v", line, err)
		}
		if _, dup := t.rows[key]; dup {
			return nil, rules.NewConfigurationError(name,
				"row %d: duplicate row key %q", line, key)
		}

		var actions [numColumns]Action
		for col, cell := range record[1:] {
			a, err := ParseAction(strings.ToUpper(strings.TrimSpace(cell)))
			if err != nil {
				return nil, rules.NewConfigurationError(name, "row %d: %v", line, err)
			}
			if (a == Split || a == SurrenderOrSplit) && key.kind != pairRow {
				return nil, rules.NewConfigurationError(name,
					"row %d: action %s only valid in a pair row, found in %s row %q",
					line, a, key.kind, key)
			}
			actions[col] = a
		}
		t.rows[key] = actions
	}

	if err := t.validateCoverage(); err != nil {
		return nil, err
	}
	return t, nil
}

func validateHeader(name string, header []string) error {
	want := []string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "A"}
	if len(header) != numColumns+1 {
		return rules.NewConfigurationError(name,
			"header: want %d columns, got %d", numColumns+1, len(header))
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "Hand") {
		return rules.NewConfigurationError(name,
			"header: first column must be \"Hand\", got %q", header[0])
	}
	for i, col := range header[1:] {
		got := strings.ToUpper(strings.TrimSpace(col))
		if got == "10" {
			got = "T"
		}
		if got != want[i] {
			return rules.NewConfigurationError(name,
				"header: column %d must be %q, got %q", i+1, want[i], col)
		}
	}
	return nil
}

// parseRowKey recognises the three row-key forms: "12", "soft_18", "8,8".
func parseRowKey(s string) (rowKey, error) {
	lower := strings.ToLower(s)
	if rest, ok := strings.CutPrefix(lower, "soft_"); ok {
		v, err := strconv.Atoi(rest)
		if err != nil || v < 13 || v > 21 {
			return rowKey{}, fmt.Errorf("invalid soft total row %q (want soft_13..soft_21)", s)
		}
		return rowKey{kind: softRow, value: v}, nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return rowKey{}, fmt.Errorf("invalid pair row %q", s)
		}
		a, aok := pairRankValue(strings.TrimSpace(parts[0]))
		b, bok := pairRankValue(strings.TrimSpace(parts[1]))
		if !aok || !bok || a != b {
			return rowKey{}, fmt.Errorf("invalid pair row %q", s)
		}
		return rowKey{kind: pairRow, value: a}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 4 || v > 21 {
		return rowKey{}, fmt.Errorf("invalid hard total row %q (want 5..20)", s)
	}
	return rowKey{kind: hardRow, value: v}, nil
}

// pairRankValue maps a pair-row rank token to its comparison bucket:
// ten-value ranks collapse to 10, aces to 1.
func pairRankValue(s string) (int, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return 1, true
	case "T", "10", "J", "Q", "K":
		return 10, true
	default:
		v, err := strconv.Atoi(s)
		if err != nil || v < 2 || v > 9 {
			return 0, false
		}
		return v, true
	}
}

// validateCoverage requires the full closed mapping: hard 5-20, soft
// 13-21 and every pair bucket. A gap would otherwise surface as a fatal
// lookup miss mid-hand.
func (t *Table) validateCoverage() error {
	var missing []string
	for v := 5; v <= 20; v++ {
		if _, ok := t.rows[rowKey{kind: hardRow, value: v}]; !ok {
			missing = append(missing, rowKey{kind: hardRow, value: v}.String())
		}
	}
	for v := 13; v <= 21; v++ {
		if _, ok := t.rows[rowKey{kind: softRow, value: v}]; !ok {
			missing = append(missing, rowKey{kind: softRow, value: v}.String())
		}
	}
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		if _, ok := t.rows[rowKey{kind: pairRow, value: v}]; !ok {
			missing = append(missing, rowKey{kind: pairRow, value: v}.String())
		}
	}
	if len(missing) > 0 {
		return rules.NewConfigurationError(t.name,
			"missing rows: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RowCount returns the number of rows loaded, for reporting.
func (t *Table) RowCount() int { return len(t.rows) }

func (t *Table) action(key rowKey, up deck.Rank) (Action, bool) {
	row, ok := t.rows[key]
	if !ok {
		return Hit, false
	}
	return row[columnIndex(up)], true
}
