package recommend

import (
	"fmt"
	"strings"
)

// Benchmark holds the 30s sit-to-stand normative thresholds for one
// gender/age bracket. Reps <= Below are below average, reps >= Above are
// above average.
type Benchmark struct {
	Below  int `json:"below"`
	AvgMin int `json:"avgMin"`
	AvgMax int `json:"avgMax"`
	Above  int `json:"above"`
}

// Range formats the average band, e.g. "10 - 13".
func (b Benchmark) Range() string {
	return fmt.Sprintf("%d - %d", b.AvgMin, b.AvgMax)
}

const (
	bracket6064 = "60-64"
	bracket6569 = "65-69"
	bracket7074 = "70-74"
	bracket7579 = "75-79"
	bracket8084 = "80-84"
	bracket8589 = "85-89"
	bracket90   = "90+"
)

// Hong Kong community norms.
var stsBenchmarks = map[Gender]map[string]Benchmark{
	GenderMale: {
		bracket6064: {Below: 11, AvgMin: 12, AvgMax: 16, Above: 17},
		bracket6569: {Below: 10, AvgMin: 11, AvgMax: 15, Above: 16},
		bracket7074: {Below: 9, AvgMin: 10, AvgMax: 13, Above: 14},
		bracket7579: {Below: 9, AvgMin: 10, AvgMax: 13, Above: 14},
		bracket8084: {Below: 9, AvgMin: 10, AvgMax: 13, Above: 14},
		bracket8589: {Below: 6, AvgMin: 7, AvgMax: 10, Above: 11},
		bracket90:   {Below: 4, AvgMin: 5, AvgMax: 7, Above: 8},
	},
	GenderFemale: {
		bracket6064: {Below: 10, AvgMin: 11, AvgMax: 14, Above: 15},
		bracket6569: {Below: 9, AvgMin: 10, AvgMax: 13, Above: 14},
		bracket7074: {Below: 8, AvgMin: 9, AvgMax: 12, Above: 13},
		bracket7579: {Below: 7, AvgMin: 8, AvgMax: 11, Above: 12},
		bracket8084: {Below: 7, AvgMin: 8, AvgMax: 11, Above: 12},
		bracket8589: {Below: 7, AvgMin: 8, AvgMax: 9, Above: 10},
		bracket90:   {Below: 6, AvgMin: 7, AvgMax: 9, Above: 10},
	},
}

// defaultBenchmark is the female 65-69 bracket, used when no bracket matches.
var defaultBenchmark = Benchmark{Below: 9, AvgMin: 10, AvgMax: 13, Above: 14}

func ageBracket(age int) string {
	switch {
	case age < 65:
		return bracket6064
	case age < 70:
		return bracket6569
	case age < 75:
		return bracket7074
	case age < 80:
		return bracket7579
	case age < 85:
		return bracket8084
	case age < 90:
		return bracket8589
	default:
		return bracket90
	}
}

// LookupSTSBenchmark returns the thresholds for an age and gender. It never
// fails: ages under 60 use the 60-64 bracket and unknown genders use the
// default bracket.
func LookupSTSBenchmark(age int, gender Gender) Benchmark {
	byAge, ok := stsBenchmarks[Gender(strings.ToLower(strings.TrimSpace(string(gender))))]
	if !ok {
		return defaultBenchmark
	}
	b, ok := byAge[ageBracket(age)]
	if !ok {
		return defaultBenchmark
	}
	return b
}

var normalizedByPerformance = map[Performance]float64{
	PerformanceBelow:   0.3,
	PerformanceAverage: 0.65,
	PerformanceAbove:   0.9,
}

// CalculateSTSScore buckets a repetition count against the normative table.
// The normalized score is categorical, not interpolated.
func CalculateSTSScore(repCount, age int, gender Gender) STSScore {
	b := LookupSTSBenchmark(age, gender)
	perf := PerformanceAverage
	switch {
	case repCount <= b.Below:
		perf = PerformanceBelow
	case repCount >= b.Above:
		perf = PerformanceAbove
	}
	return STSScore{
		Performance:     perf,
		BenchmarkRange:  b.Range(),
		NormalizedScore: normalizedByPerformance[perf],
	}
}
