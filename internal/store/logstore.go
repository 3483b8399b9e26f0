package store

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	dataKey = "food-tracker-data"
	goalKey = "calorie-goal"

	// DefaultCalorieGoal applies until the first SetGoal.
	DefaultCalorieGoal = 2000

	dataVersion = 1
)

// dataEnvelope wraps the persisted date→log mapping with a schema version so
// a future shape change does not strand old blobs.
type dataEnvelope struct {
	Version int                  `json:"version"`
	Logs    map[string]*DailyLog `json:"logs"`
}

// LogStore owns the per-date meal logs and the single global calorie goal.
// All operations take an explicit date; resolving "today" is the caller's
// job (see Today), so a midnight rollover between a read and a write cannot
// silently split them across dates.
//
// The mutex guards the whole read-modify-write of a log so totals are always
// recomputed atomically with the mutation that invalidated them.
type LogStore struct {
	mu    sync.Mutex
	blobs BlobStore
	logs  map[string]*DailyLog
	goal  int
}

// NewLogStore loads persisted state from blobs. A missing blob means a fresh
// start; a corrupt blob is reset to empty rather than treated as fatal.
func NewLogStore(blobs BlobStore) (*LogStore, error) {
	s := &LogStore{
		blobs: blobs,
		logs:  make(map[string]*DailyLog),
		goal:  DefaultCalorieGoal,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LogStore) load() error {
	data, exists, err := s.blobs.Get(dataKey)
	if err != nil {
		return fmt.Errorf("failed to read log data: %w", err)
	}
	if exists {
		var envelope dataEnvelope
		if err := json.Unmarshal([]byte(data), &envelope); err == nil && envelope.Logs != nil {
			s.logs = envelope.Logs
		} else {
			// Pre-versioning blobs were the bare date→log mapping.
			var legacy map[string]*DailyLog
			if err := json.Unmarshal([]byte(data), &legacy); err == nil && legacy != nil {
				s.logs = legacy
			} else {
				log.Printf("Warning: corrupt log data blob, resetting to empty: %v", err)
				s.logs = make(map[string]*DailyLog)
			}
		}
	}

	goalStr, exists, err := s.blobs.Get(goalKey)
	if err != nil {
		return fmt.Errorf("failed to read calorie goal: %w", err)
	}
	if exists {
		goal, err := strconv.Atoi(goalStr)
		if err != nil || goal <= 0 {
			log.Printf("Warning: invalid calorie goal blob %q, using default", goalStr)
		} else {
			s.goal = goal
		}
	}
	return nil
}

// save persists the whole date→log mapping as a single blob.
// Caller must hold the mutex.
func (s *LogStore) save() error {
	data, err := json.Marshal(dataEnvelope{Version: dataVersion, Logs: s.logs})
	if err != nil {
		return fmt.Errorf("failed to marshal log data: %w", err)
	}
	if err := s.blobs.Set(dataKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist log data: %w", err)
	}
	return nil
}

// Today returns the current calendar date in the local timezone, formatted
// as a log key.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Log returns the log for date, synthesizing an empty one with the current
// goal if none exists. The synthesized log is not persisted until the first
// mutation. The returned value is a copy.
func (s *LogStore) Log(date string) DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.logs[date]; ok {
		return copyLog(existing, s.goal)
	}
	return DailyLog{Date: date, Meals: []Meal{}, CalorieGoal: s.goal}
}

// AddMeal appends meal to the log for date, creating the log if needed,
// recomputes all totals and persists. A missing ID or timestamp is filled in.
func (s *LogStore) AddMeal(date string, meal Meal) (Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	if meal.Timestamp == 0 {
		meal.Timestamp = time.Now().UnixMilli()
	}

	dayLog, ok := s.logs[date]
	if !ok {
		dayLog = &DailyLog{Date: date, Meals: []Meal{}, CalorieGoal: s.goal}
		s.logs[date] = dayLog
	}
	dayLog.Meals = append(dayLog.Meals, meal)
	dayLog.recomputeTotals()

	if err := s.save(); err != nil {
		return Meal{}, err
	}
	return meal, nil
}

// DeleteMeal removes the meal with the given id from the log for date.
// An unknown id or an absent log is a no-op, not an error. A log emptied by
// deletion stays present with zero totals.
func (s *LogStore) DeleteMeal(date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dayLog, ok := s.logs[date]
	if !ok {
		return nil
	}

	found := false
	for i, m := range dayLog.Meals {
		if m.ID == id {
			dayLog.Meals = append(dayLog.Meals[:i], dayLog.Meals[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	dayLog.recomputeTotals()
	return s.save()
}

// Goal returns the global calorie goal.
func (s *LogStore) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

// SetGoal updates the global calorie goal. One goal applies to all days; a
// log synthesized after this call reflects the new value.
func (s *LogStore) SetGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("calorie goal must be positive, got %d", goal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.goal = goal
	if err := s.blobs.Set(goalKey, strconv.Itoa(goal)); err != nil {
		return fmt.Errorf("failed to persist calorie goal: %w", err)
	}
	return nil
}

// Reset drops all persisted state.
func (s *LogStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = make(map[string]*DailyLog)
	s.goal = DefaultCalorieGoal
	if err := s.blobs.Delete(dataKey); err != nil {
		return err
	}
	return s.blobs.Delete(goalKey)
}

func copyLog(l *DailyLog, goal int) DailyLog {
	out := *l
	out.CalorieGoal = goal
	out.Meals = make([]Meal, len(l.Meals))
	copy(out.Meals, l.Meals)
	return out
}
