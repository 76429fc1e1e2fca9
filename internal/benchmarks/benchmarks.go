// Package benchmarks provides the static industry benchmark lookup used to
// contextualize Digital Control Scores.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Benchmark holds reference numbers for one industry.
type Benchmark struct {
	Industry          string  `json:"industry"`
	AvgConversionRate float64 `json:"avg_conversion_rate"` // fraction, e.g. 0.028
	AvgDealValue      float64 `json:"avg_deal_value"`      // USD
	AvgCompositeScore float64 `json:"avg_composite_score"` // 0-100
	AvgCTRPct         float64 `json:"avg_ctr_pct"`
}

// Table is an immutable industry-to-benchmark lookup. Unknown or blank
// industries resolve to the table's default entry, never an error.
type Table struct {
	entries      map[string]Benchmark
	defaultEntry Benchmark
}

// defaultBenchmark is returned for blank or unrecognized industries.
var defaultBenchmark = Benchmark{
	Industry:          "general",
	AvgConversionRate: 0.025,
	AvgDealValue:      1800,
	AvgCompositeScore: 58,
	AvgCTRPct:         2.8,
}

// Default returns the built-in benchmark table.
func Default() Table {
	return NewTable([]Benchmark{
		{Industry: "ecommerce", AvgConversionRate: 0.029, AvgDealValue: 120, AvgCompositeScore: 61, AvgCTRPct: 2.7},
		{Industry: "saas", AvgConversionRate: 0.035, AvgDealValue: 4800, AvgCompositeScore: 66, AvgCTRPct: 3.1},
		{Industry: "legal", AvgConversionRate: 0.048, AvgDealValue: 6500, AvgCompositeScore: 55, AvgCTRPct: 3.4},
		{Industry: "healthcare", AvgConversionRate: 0.036, AvgDealValue: 2400, AvgCompositeScore: 57, AvgCTRPct: 3.2},
		{Industry: "real_estate", AvgConversionRate: 0.026, AvgDealValue: 9200, AvgCompositeScore: 54, AvgCTRPct: 2.6},
		{Industry: "finance", AvgConversionRate: 0.031, AvgDealValue: 3900, AvgCompositeScore: 63, AvgCTRPct: 2.9},
		{Industry: "hospitality", AvgConversionRate: 0.022, AvgDealValue: 450, AvgCompositeScore: 52, AvgCTRPct: 2.4},
		{Industry: "automotive", AvgConversionRate: 0.020, AvgDealValue: 31000, AvgCompositeScore: 56, AvgCTRPct: 2.2},
		{Industry: "education", AvgConversionRate: 0.041, AvgDealValue: 1500, AvgCompositeScore: 59, AvgCTRPct: 3.6},
		{Industry: "home_services", AvgConversionRate: 0.052, AvgDealValue: 980, AvgCompositeScore: 50, AvgCTRPct: 3.0},
	}, defaultBenchmark)
}

// NewTable builds a table from explicit entries plus a default. Tests can use
// this to substitute alternate benchmark sets.
func NewTable(entries []Benchmark, def Benchmark) Table {
	m := make(map[string]Benchmark, len(entries))
	for _, b := range entries {
		m[b.Industry] = b
	}
	return Table{entries: m, defaultEntry: def}
}

// tableFile is the on-disk JSON shape for a custom benchmark table.
type tableFile struct {
	Default    *Benchmark  `json:"default,omitempty"`
	Industries []Benchmark `json:"industries"`
}

// LoadTable reads a custom benchmark table from a JSON file. A missing
// default entry in the file falls back to the built-in default.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read benchmark file %s: %w", path, err)
	}

	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Table{}, fmt.Errorf("failed to parse benchmark JSON: %w", err)
	}
	if len(tf.Industries) == 0 {
		return Table{}, fmt.Errorf("benchmark file %s contains no industries", path)
	}

	def := defaultBenchmark
	if tf.Default != nil {
		def = *tf.Default
	}
	return NewTable(tf.Industries, def), nil
}

// Lookup returns the benchmark for an industry. Input is trimmed; blank or
// unrecognized industries return the default entry. Matching is key-exact,
// no fuzzy matching.
func (t Table) Lookup(industry string) Benchmark {
	key := strings.TrimSpace(industry)
	if key == "" {
		return t.defaultEntry
	}
	if b, ok := t.entries[key]; ok {
		return b
	}
	return t.defaultEntry
}

// DefaultEntry returns the fallback benchmark.
func (t Table) DefaultEntry() Benchmark {
	return t.defaultEntry
}

// Industries returns the known industry keys in sorted order.
func (t Table) Industries() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
