package recommendation

const (
	ReasonOrderHistory       = "Based on your order history"
	ReasonTrendingUp         = "Trending up in your recent orders"
	ReasonLessFrequent       = "Less frequent in recent orders"
	ReasonPopularStudents    = "Popular among students"
	ReasonSimilarUsers       = "Popular among similar users"
	ReasonSimilarStudents    = "Popular among similar students"
	ReasonFavoriteAndSimilar = "Your favorite + popular among similar users"
	ReasonPreferredSpot      = "Your preferred spot"

	TrendPeriod7Days = "7_days"
)

type ParkingConfig struct {
	FallbackSlot  string `yaml:"fallback_slot"`
	FallbackScore int    `yaml:"fallback_score"`
}

type CollaborativeConfig struct {
	// off by default: the neighbour step never produced results in production
	NeighborsEnabled bool `yaml:"neighbors_enabled"`
	Neighbors        int  `yaml:"neighbors"`
}

// Config holds the scoring constants. Every field has a default; a YAML
// file only needs the keys it changes.
type Config struct {
	TopN int `yaml:"top_n"`

	// exp(-days/DecayDays)
	DecayDays float64 `yaml:"decay_days"`

	RecentWindowDays int `yaml:"recent_window_days"`
	TrendWindowDays  int `yaml:"trend_window_days"`

	TrendUpThreshold   float64 `yaml:"trend_up_threshold"`
	TrendUpBoost       float64 `yaml:"trend_up_boost"`
	TrendDownThreshold float64 `yaml:"trend_down_threshold"`
	TrendDownFactor    float64 `yaml:"trend_down_factor"`

	// share of a collaborative score folded into a personal entry
	CollaborativeBoost float64 `yaml:"collaborative_boost"`

	Parking       ParkingConfig       `yaml:"parking"`
	Collaborative CollaborativeConfig `yaml:"collaborative"`
}

const (
	defaultTopN               = 3
	defaultDecayDays          = 30
	defaultRecentWindowDays   = 7
	defaultTrendWindowDays    = 30
	defaultTrendUpThreshold   = 0.5
	defaultTrendUpBoost       = 0.3
	defaultTrendDownThreshold = -0.5
	defaultTrendDownFactor    = 0.7
	defaultCollabBoost        = 0.5
	defaultFallbackSlot       = "A-02"
	defaultFallbackScore      = 2
	defaultNeighbors          = 5
)

func DefaultConfig() Config {
	return Config{
		TopN:               defaultTopN,
		DecayDays:          defaultDecayDays,
		RecentWindowDays:   defaultRecentWindowDays,
		TrendWindowDays:    defaultTrendWindowDays,
		TrendUpThreshold:   defaultTrendUpThreshold,
		TrendUpBoost:       defaultTrendUpBoost,
		TrendDownThreshold: defaultTrendDownThreshold,
		TrendDownFactor:    defaultTrendDownFactor,
		CollaborativeBoost: defaultCollabBoost,
		Parking: ParkingConfig{
			FallbackSlot:  defaultFallbackSlot,
			FallbackScore: defaultFallbackScore,
		},
		Collaborative: CollaborativeConfig{
			NeighborsEnabled: false,
			Neighbors:        defaultNeighbors,
		},
	}
}
