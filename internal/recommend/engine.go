package recommend

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kendea1221/Hiromap/internal/spot"
)

const (
	minHours     = 1
	maxHours     = 8
	defaultHours = 2
	heatTempC    = 27
	longVisitH   = 3
	shortlistCap = 2
)

var firstInteger = regexp.MustCompile(`\d+`)

// Suggestion is the ranked shortlist for a stated time budget plus the
// rationale shown to the user.
type Suggestion struct {
	Hours     int         `json:"hours"`
	Spots     []spot.Spot `json:"spots"`
	Rationale string      `json:"rationale"`
}

// Engine maps a free-text duration and an ambient snapshot to a
// shortlist via a fixed rule table. Same inputs, same shortlist.
type Engine struct {
	reg *spot.Registry
}

func NewEngine(reg *spot.Registry) *Engine {
	return &Engine{reg: reg}
}

// ParseHours extracts the first integer in text and clamps it to the
// supported visit window, defaulting to two hours.
func ParseHours(text string) int {
	m := firstInteger.FindString(text)
	if m == "" {
		return defaultHours
	}
	hours, err := strconv.Atoi(m)
	if err != nil {
		return defaultHours
	}
	if hours < minHours {
		return minHours
	}
	if hours > maxHours {
		return maxHours
	}
	return hours
}

// Suggest applies the rule table:
// hot and short stays get the first two indoor spots, long stays get
// the designated landmark, everything else the first two spots in
// registry order.
func (e *Engine) Suggest(text string, env Weather) Suggestion {
	hours := ParseHours(text)
	shortlist := e.shortlistFor(hours, env)

	var b strings.Builder
	fmt.Fprintf(&b, "現在の環境は %.0f°C / 湿度 %d%% です。%d時間で楽しめるおすすめはこちらです。\n\n", env.Temp, env.Humidity, hours)
	if env.Temp >= heatTempC {
		b.WriteString("現在は少し蒸し暑いため、涼しい室内で歴史を感じられるスポットを中心に。")
	}
	b.WriteString("\n")
	for i, s := range shortlist {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("・" + s.Name)
	}

	return Suggestion{Hours: hours, Spots: shortlist, Rationale: b.String()}
}

func (e *Engine) shortlistFor(hours int, env Weather) []spot.Spot {
	all := e.reg.All()

	if env.Temp >= heatTempC && hours <= defaultHours {
		indoor := []spot.Spot{}
		for _, s := range all {
			if s.Kind == spot.KindIndoor {
				indoor = append(indoor, s)
				if len(indoor) == shortlistCap {
					break
				}
			}
		}
		return indoor
	}

	if hours >= longVisitH {
		if landmark, ok := e.reg.FindByID(spot.LandmarkID); ok {
			return []spot.Spot{landmark}
		}
		return []spot.Spot{}
	}

	if len(all) > shortlistCap {
		all = all[:shortlistCap]
	}
	return all
}
