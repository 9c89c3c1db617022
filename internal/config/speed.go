package config

import "time"

// SpeedConfig defines the tick-rate band in ticks per second.
type SpeedConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// InitialDelay is the tick delay every game starts with.
func (s SpeedConfig) InitialDelay() time.Duration {
	return time.Second / time.Duration(s.Min)
}

// InBand reports whether a score drives the tick rate directly.
// The band is (Min, Max]: a score equal to Min still plays at the initial rate.
func (s SpeedConfig) InBand(score int) bool {
	return score > s.Min && score <= s.Max
}

// Delay returns the tick delay for the given score.
// Outside the band the previous delay is kept, so the speed-up never resets
// within a game and stops growing once Max is passed.
func (s SpeedConfig) Delay(score int, prev time.Duration) time.Duration {
	if !s.InBand(score) {
		return prev
	}
	return time.Second / time.Duration(score)
}
