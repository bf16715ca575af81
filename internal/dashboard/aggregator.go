// Package dashboard turns a user's mood logs into chart-ready statistics.
//
// Everything here is a pure function of the input logs: no clock, no store.
package dashboard

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/waste3d/mindwell-api/internal/domain"
)

const (
	TrendWindow   = 7
	TopActivities = 5
	LabelLength   = 4

	FallbackColor = "#cccccc"
)

var emotionColors = map[domain.Emotion]string{
	domain.EmotionHappy:   "#16a34a",
	domain.EmotionContent: "#84cc16",
	domain.EmotionNeutral: "#94a3b8",
	domain.EmotionSad:     "#3b82f6",
	domain.EmotionAnxious: "#f97316",
	domain.EmotionAngry:   "#ef4444",
}

var barPalette = []string{"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e"}

var weekdayLabels = [...]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

type PieSlice struct {
	Value int    `json:"value"`
	Count int    `json:"count"`
	Color string `json:"color"`
	Text  string `json:"text"`
	Label string `json:"label"`
}

type Point struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type Bar struct {
	Value      int    `json:"value"`
	Label      string `json:"label"`
	FrontColor string `json:"frontColor"`
}

type Stats struct {
	PieChart         []PieSlice `json:"pieChart"`
	LineMood         []Point    `json:"lineMood"`
	LineEnergy       []Point    `json:"lineEnergy"`
	BarData          []Bar      `json:"barData"`
	AverageIntensity float64    `json:"averageIntensity"`
	TotalDays        int        `json:"totalDays"`
}

// ComputeStats builds the dashboard from logs in any order. An empty input
// yields empty (non-nil) series and a zero average.
func ComputeStats(logs []domain.MoodLog) Stats {
	chrono := chronological(logs)

	mood, energy := trend(chrono)
	return Stats{
		PieChart:         distribution(chrono),
		LineMood:         mood,
		LineEnergy:       energy,
		BarData:          activityRanking(chrono),
		AverageIntensity: averageIntensity(chrono),
		TotalDays:        len(chrono),
	}
}

// chronological returns a sorted copy, oldest first. Equal timestamps keep ID order.
func chronological(logs []domain.MoodLog) []domain.MoodLog {
	out := make([]domain.MoodLog, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LoggedAt.Equal(out[j].LoggedAt) {
			return out[i].LoggedAt.Before(out[j].LoggedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func distribution(logs []domain.MoodLog) []PieSlice {
	counts := map[domain.Emotion]int{}
	for _, l := range logs {
		counts[l.Emotion]++
	}

	total := len(logs)
	if total == 0 {
		total = 1
	}

	slices := make([]PieSlice, 0, len(counts))
	for _, e := range emotionOrder(counts) {
		pct := percent(counts[e], total)
		color, ok := emotionColors[e]
		if !ok {
			color = FallbackColor
		}
		slices = append(slices, PieSlice{
			Value: pct,
			Count: counts[e],
			Color: color,
			Text:  strconv.Itoa(pct) + "%",
			Label: capitalize(string(e)),
		})
	}
	return slices
}

// emotionOrder lists known emotions in display order, then unknown ones alphabetically.
func emotionOrder(counts map[domain.Emotion]int) []domain.Emotion {
	order := make([]domain.Emotion, 0, len(counts))
	for _, e := range domain.Emotions {
		if counts[e] > 0 {
			order = append(order, e)
		}
	}

	var unknown []domain.Emotion
	for e := range counts {
		if !e.Valid() {
			unknown = append(unknown, e)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	return append(order, unknown...)
}

func trend(chrono []domain.MoodLog) (mood, energy []Point) {
	recent := chrono
	if len(recent) > TrendWindow {
		recent = recent[len(recent)-TrendWindow:]
	}

	mood = make([]Point, 0, len(recent))
	energy = make([]Point, 0, len(recent))
	for _, l := range recent {
		day := weekdayLabels[l.LoggedAt.Weekday()]
		mood = append(mood, Point{Value: l.Intensity, Label: day})
		energy = append(energy, Point{Value: l.Energy, Label: day})
	}
	return mood, energy
}

func activityRanking(chrono []domain.MoodLog) []Bar {
	counts := map[string]int{}
	var seen []string
	for i := range chrono {
		for _, tag := range chrono[i].ActivityTags() {
			if counts[tag] == 0 {
				seen = append(seen, tag)
			}
			counts[tag]++
		}
	}

	// Стабильная сортировка: при равенстве остается порядок первого появления.
	sort.SliceStable(seen, func(i, j int) bool { return counts[seen[i]] > counts[seen[j]] })
	if len(seen) > TopActivities {
		seen = seen[:TopActivities]
	}

	bars := make([]Bar, 0, len(seen))
	for i, tag := range seen {
		bars = append(bars, Bar{
			Value:      counts[tag],
			Label:      truncate(tag, LabelLength),
			FrontColor: barPalette[i%len(barPalette)],
		})
	}
	return bars
}

func averageIntensity(logs []domain.MoodLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.Intensity
	}
	avg := float64(sum) / float64(len(logs))
	return math.RoundToEven(avg*10) / 10
}

func percent(count, total int) int {
	return int(math.RoundToEven(float64(count) / float64(total) * 100))
}

func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
