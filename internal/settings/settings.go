// Package settings holds the operator-tunable policy parameters. Values
// are read at check time, not frozen at process start, so an operator can
// tighten or loosen limits without a restart.
package settings

import "sync"

type Values struct {
	ReportCooldownMinutes   int     `json:"report_cooldown_minutes" validate:"min=0,max=1440"`
	FeedbackCooldownMinutes int     `json:"feedback_cooldown_minutes" validate:"min=0,max=1440"`
	AlertWindowMinutes      int     `json:"alert_window_minutes" validate:"min=1,max=10080"`
	MaxAlertsPerWindow      int     `json:"max_alerts_per_window" validate:"min=1,max=100"`
	MaxReportDistanceMiles  float64 `json:"max_report_distance_miles" validate:"min=0.1,max=500"`
	MinIdentifierLength     int     `json:"min_identifier_length" validate:"min=1,max=64"`
}

func Defaults() Values {
	return Values{
		ReportCooldownMinutes:   5,
		FeedbackCooldownMinutes: 5,
		AlertWindowMinutes:      60 * 24,
		MaxAlertsPerWindow:      3,
		MaxReportDistanceMiles:  10,
		MinIdentifierLength:     8,
	}
}

// Store is a process-wide snapshot holder. Reads return a copy, so policy
// checks see one consistent set of values per call.
type Store struct {
	mu     sync.RWMutex
	values Values
}

func NewStore(initial Values) *Store {
	return &Store{values: initial}
}

func (s *Store) Get() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

func (s *Store) Update(v Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = v
}
