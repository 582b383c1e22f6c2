package recommend

import "sync"

type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
)

// Weather is the ambient-condition snapshot. It is supplied from
// outside; the engine never fetches it.
type Weather struct {
	Temp      float64   `json:"temp"`
	Condition Condition `json:"condition"`
	Humidity  int       `json:"humidity"`
}

func DefaultWeather() Weather {
	return Weather{Temp: 28, Condition: ConditionSunny, Humidity: 65}
}

// Snapshot holds the current ambient condition for the process.
type Snapshot struct {
	mu      sync.RWMutex
	weather Weather
}

func NewSnapshot() *Snapshot {
	return &Snapshot{weather: DefaultWeather()}
}

func (s *Snapshot) Get() Weather {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weather
}

func (s *Snapshot) Set(w Weather) {
	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()
}
