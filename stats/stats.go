// Package stats keeps the history of finished runs on disk.
//
// Recent runs are stored one record each. Once GroupSize records share a
// compression level, the oldest GroupSize of them are folded into a single
// aggregate one level up, so the file stays small over long sessions.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"snake-levels/game"
)

const GroupSize = 100

// RunRecord is a single run (CompressionIndex 0) or an aggregate of runs.
type RunRecord struct {
	RunID            string    `json:"runId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	Level            int       `json:"level"`
	Cause            string    `json:"cause,omitempty"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	MaxLevel         int       `json:"maxLevel"`
	AverageDuration  float64   `json:"averageDuration"`
}

// History implements game.Recorder. A blank path keeps it in memory only.
type History struct {
	path      string
	groupSize int
	Records   []RunRecord
}

// NewHistory loads path if it exists. On a read or decode error the
// returned history is empty but usable.
func NewHistory(path string) (*History, error) {
	h := &History{
		path:      path,
		groupSize: GroupSize,
		Records:   make([]RunRecord, 0),
	}
	if path == "" {
		return h, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return h, fmt.Errorf("read stats: %w", err)
	}
	if err := json.Unmarshal(data, &h.Records); err != nil {
		h.Records = make([]RunRecord, 0)
		return h, fmt.Errorf("decode stats %s: %w", path, err)
	}
	return h, nil
}

// Record adds a finished run and writes the history back to disk.
func (h *History) Record(r game.Result) error {
	duration := r.EndTime.Sub(r.StartTime).Seconds()
	h.Records = append(h.Records, RunRecord{
		RunID:           r.RunID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Score:           r.Score,
		Level:           r.Level,
		Cause:           r.Cause.String(),
		GamesCount:      1,
		AverageScore:    float64(r.Score),
		MaxScore:        r.Score,
		MinScore:        r.Score,
		MaxLevel:        r.Level,
		AverageDuration: duration,
	})
	h.compress()
	return h.Save()
}

func (h *History) compress() {
	for {
		sort.SliceStable(h.Records, func(i, j int) bool {
			if h.Records[i].CompressionIndex != h.Records[j].CompressionIndex {
				return h.Records[i].CompressionIndex > h.Records[j].CompressionIndex
			}
			return h.Records[i].StartTime.Before(h.Records[j].StartTime)
		})

		start, level, ok := h.fullGroup()
		if !ok {
			return
		}
		merged := mergeRecords(h.Records[start:start+h.groupSize], level+1)
		rest := append(h.Records[:start:start], merged)
		h.Records = append(rest, h.Records[start+h.groupSize:]...)
	}
}

// fullGroup finds the first run of at least groupSize records sharing a
// compression level. Records must already be sorted by level.
func (h *History) fullGroup() (start, level int, ok bool) {
	for i := 0; i < len(h.Records); {
		j := i
		for j < len(h.Records) && h.Records[j].CompressionIndex == h.Records[i].CompressionIndex {
			j++
		}
		if j-i >= h.groupSize {
			return i, h.Records[i].CompressionIndex, true
		}
		i = j
	}
	return 0, 0, false
}

func mergeRecords(group []RunRecord, level int) RunRecord {
	out := RunRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxLevel:         group[0].MaxLevel,
	}
	var totalScore, totalDuration float64
	for _, rec := range group {
		if rec.StartTime.Before(out.StartTime) {
			out.StartTime = rec.StartTime
		}
		if rec.EndTime.After(out.EndTime) {
			out.EndTime = rec.EndTime
		}
		if rec.MaxScore > out.MaxScore {
			out.MaxScore = rec.MaxScore
		}
		if rec.MinScore < out.MinScore {
			out.MinScore = rec.MinScore
		}
		if rec.MaxLevel > out.MaxLevel {
			out.MaxLevel = rec.MaxLevel
		}
		totalScore += rec.AverageScore * float64(rec.GamesCount)
		totalDuration += rec.AverageDuration * float64(rec.GamesCount)
		out.GamesCount += rec.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.Score = out.MaxScore
	out.Level = out.MaxLevel
	return out
}

// Save writes the history as JSON. It is a no-op for in-memory histories.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}
	data, err := json.MarshalIndent(h.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// Count is the number of runs recorded, aggregates included.
func (h *History) Count() int {
	total := 0
	for _, rec := range h.Records {
		total += rec.GamesCount
	}
	return total
}

// AverageScore is the mean score over every recorded run.
func (h *History) AverageScore() float64 {
	games := h.Count()
	if games == 0 {
		return 0
	}
	var total float64
	for _, rec := range h.Records {
		total += rec.AverageScore * float64(rec.GamesCount)
	}
	return total / float64(games)
}

// MaxScore is the best score in the history.
func (h *History) MaxScore() int {
	best := 0
	for _, rec := range h.Records {
		if rec.MaxScore > best {
			best = rec.MaxScore
		}
	}
	return best
}
