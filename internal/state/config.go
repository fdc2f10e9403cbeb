package state

import (
	"fmt"
	"github.com/janpfeifer/colonyGo/internal/generics"
	"github.com/janpfeifer/colonyGo/internal/parameters"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
	"strings"
)

// Wave of bees scheduled to invade at the given turn.
type Wave struct {
	Turn  int `yaml:"turn"`
	Count int `yaml:"count"`
}

// String returns the wave in the "turn:count" format.
func (w Wave) String() string { return fmt.Sprintf("%d:%d", w.Turn, w.Count) }

// Config describes a game scenario: the colony's tunnels and food, and the hive's bees.
type Config struct {
	Food          int    `yaml:"food"`
	Tunnels       int    `yaml:"tunnels"`
	TunnelLength  int    `yaml:"tunnel_length"`
	MoatFrequency int    `yaml:"moat_frequency"`
	BeeArmor      int    `yaml:"bee_armor"`
	BeeDamage     int    `yaml:"bee_damage"`
	Waves         []Wave `yaml:"waves"`
}

// DefaultConfig returns the default scenario: 3 dry tunnels of length 8 and 26 bees in 9 waves.
func DefaultConfig() *Config {
	return &Config{
		Food:          2,
		Tunnels:       3,
		TunnelLength:  8,
		MoatFrequency: 0,
		BeeArmor:      3,
		BeeDamage:     1,
		Waves: []Wave{
			{2, 1}, {4, 1}, {6, 2}, {8, 2}, {10, 3}, {12, 3}, {14, 4}, {16, 4}, {20, 6},
		},
	}
}

// ParseConfig returns the DefaultConfig updated with the given configuration string,
// see Config.Update.
func ParseConfig(config string) (*Config, error) {
	c := DefaultConfig()
	if err := c.Update(config); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfigFile reads a YAML scenario. Keys missing in the file take the values of
// DefaultConfig.
func LoadConfigFile(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario file %q", path)
	}
	c := DefaultConfig()
	if err = yaml.Unmarshal(contents, c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse scenario file %q", path)
	}
	if err = c.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid scenario file %q", path)
	}
	return c, nil
}

// NewConfig loads the scenario from the YAML file, if given, or starts from DefaultConfig
// otherwise. The configuration string, if not empty, is then applied on top of it.
func NewConfig(configFile, config string) (c *Config, err error) {
	if configFile == "" {
		return ParseConfig(config)
	}
	if c, err = LoadConfigFile(configFile); err != nil {
		return nil, err
	}
	if err = c.Update(config); err != nil {
		return nil, err
	}
	return c, nil
}

// Update the configuration from a configuration string like
// "food=10,tunnels=1,length=8,moat=3,bee_armor=4,bee_damage=1,waves=0:1|3:2".
//
// Waves are given as "turn:count" entries separated by "|". Unknown keys are an error.
func (c *Config) Update(config string) (err error) {
	params := parameters.NewFromConfigString(config)
	for key, field := range map[string]*int{
		"food":       &c.Food,
		"tunnels":    &c.Tunnels,
		"length":     &c.TunnelLength,
		"moat":       &c.MoatFrequency,
		"bee_armor":  &c.BeeArmor,
		"bee_damage": &c.BeeDamage,
	} {
		if *field, err = parameters.PopParamOr(params, key, *field); err != nil {
			return err
		}
	}
	if _, found := params["waves"]; found {
		var wavesStr string
		wavesStr, err = parameters.PopParamOr(params, "waves", "")
		if err != nil {
			return err
		}
		if c.Waves, err = ParseWaves(wavesStr); err != nil {
			return err
		}
	}
	if err = params.CheckAllUsed(); err != nil {
		return errors.WithMessagef(err, "invalid game configuration %q", config)
	}
	return c.Validate()
}

// ParseWaves parses waves in the "turn:count|turn:count|..." format. An empty string means
// no waves.
func ParseWaves(wavesStr string) ([]Wave, error) {
	wavesStr = strings.TrimSpace(wavesStr)
	if wavesStr == "" {
		return nil, nil
	}
	var waves []Wave
	for _, entry := range strings.Split(wavesStr, "|") {
		turnStr, countStr, found := strings.Cut(strings.TrimSpace(entry), ":")
		if !found {
			return nil, errors.Errorf("invalid wave %q, expected \"turn:count\"", entry)
		}
		turn, err := strconv.Atoi(turnStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid turn in wave %q", entry)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number of bees in wave %q", entry)
		}
		waves = append(waves, Wave{Turn: turn, Count: count})
	}
	return waves, nil
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	switch {
	case c.Tunnels <= 0:
		return errors.Errorf("number of tunnels must be > 0, got %d", c.Tunnels)
	case c.TunnelLength <= 0:
		return errors.Errorf("tunnel length must be > 0, got %d", c.TunnelLength)
	case c.Food < 0:
		return errors.Errorf("starting food must be >= 0, got %d", c.Food)
	case c.MoatFrequency < 0:
		return errors.Errorf("moat frequency must be >= 0, got %d", c.MoatFrequency)
	case c.BeeArmor <= 0:
		return errors.Errorf("bee armor must be > 0, got %d", c.BeeArmor)
	case c.BeeDamage < 0:
		return errors.Errorf("bee damage must be >= 0, got %d", c.BeeDamage)
	}
	turns := generics.MakeSet[int](len(c.Waves))
	for _, wave := range c.Waves {
		if wave.Turn < 0 || wave.Count < 0 {
			return errors.Errorf("invalid wave %s: turn and count must be >= 0", wave)
		}
		if turns.Has(wave.Turn) {
			return errors.Errorf("more than one wave scheduled at turn %d", wave.Turn)
		}
		turns.Insert(wave.Turn)
	}
	return nil
}

// NumBees returns the total number of bees in all waves.
func (c *Config) NumBees() (count int) {
	for _, wave := range c.Waves {
		count += wave.Count
	}
	return
}

// String returns the configuration in the format accepted by ParseConfig.
func (c *Config) String() string {
	waves := generics.SliceMap(c.Waves, Wave.String)
	return fmt.Sprintf("food=%d,tunnels=%d,length=%d,moat=%d,bee_armor=%d,bee_damage=%d,waves=%s",
		c.Food, c.Tunnels, c.TunnelLength, c.MoatFrequency, c.BeeArmor, c.BeeDamage,
		strings.Join(waves, "|"))
}
