package config

import "time"

// DetectionConfig carries the tuning knobs of the detectors and the
// score fuser. The defaults are the calibrated production values; change
// them only with a re-scored backtest.
type DetectionConfig struct {
	// EWMAAlpha is the smoothing factor for profile mean/variance updates.
	EWMAAlpha float64 `yaml:"ewma_alpha"`

	// WarmupSamples is the minimum profile sample count before the
	// behavioral detector scores z-values (below it the score is 0).
	WarmupSamples int `yaml:"warmup_samples"`

	// MahalanobisSamples is the minimum sample count before the
	// multivariate distance upgrade kicks in.
	MahalanobisSamples int `yaml:"mahalanobis_samples"`

	// ZThreshold flags a per-feature deviation as anomalous.
	ZThreshold float64 `yaml:"z_threshold"`

	// FeatureHistoryMax bounds the per-user feature history kept for
	// covariance estimation.
	FeatureHistoryMax int `yaml:"feature_history_max"`

	// ChiSquareP is the p-value below which the timing chi-square test
	// flags an unusual hour-of-day distribution.
	ChiSquareP float64 `yaml:"chi_square_p"`

	// BurstWindow is the sliding window of the burst detector.
	BurstWindow time.Duration `yaml:"burst_window"`
	// BurstMinEvents is the minimum events in the window to consider.
	BurstMinEvents int `yaml:"burst_min_events"`
	// BurstRateFactor flags when the windowed rate exceeds the profile
	// baseline by this factor.
	BurstRateFactor float64 `yaml:"burst_rate_factor"`

	// CoordinationWindow is the sliding window of the coordination test.
	CoordinationWindow time.Duration `yaml:"coordination_window"`
	// CoordinationMinActors is the minimum distinct actors in the window.
	CoordinationMinActors int `yaml:"coordination_min_actors"`
	// CoordinationMinEvents is the minimum events in the window.
	CoordinationMinEvents int `yaml:"coordination_min_events"`

	// Fusion weights over the behavioral, temporal, and content scores.
	WeightBehavioral float64 `yaml:"weight_behavioral"`
	WeightTemporal   float64 `yaml:"weight_temporal"`
	WeightContent    float64 `yaml:"weight_content"`

	// RepoBoost scales the criticality multiplier: final = base * (1 + RepoBoost*criticality).
	RepoBoost float64 `yaml:"repo_boost"`

	// ReportFloor is the minimum final score that produces a persisted
	// anomaly report.
	ReportFloor float64 `yaml:"report_floor"`

	// DetectorTimeout bounds a single detector call on one event.
	DetectorTimeout time.Duration `yaml:"detector_timeout"`
	// EventTimeout bounds the full per-event detection fan-out.
	EventTimeout time.Duration `yaml:"event_timeout"`

	// ProfileCacheSize is the LRU capacity of the in-memory profile cache.
	ProfileCacheSize int `yaml:"profile_cache_size"`

	// ProfileTTL expires profiles with no activity.
	ProfileTTL time.Duration `yaml:"profile_ttl"`

	// CriticalityCacheTTL is how long computed repository criticality
	// scores stay fresh.
	CriticalityCacheTTL time.Duration `yaml:"criticality_cache_ttl"`
}

// DefaultDetectionConfig returns the built-in detection defaults.
func DefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		EWMAAlpha:             0.05,
		WarmupSamples:         10,
		MahalanobisSamples:    30,
		ZThreshold:            3.0,
		FeatureHistoryMax:     100,
		ChiSquareP:            0.01,
		BurstWindow:           5 * time.Minute,
		BurstMinEvents:        5,
		BurstRateFactor:       2.0,
		CoordinationWindow:    10 * time.Minute,
		CoordinationMinActors: 3,
		CoordinationMinEvents: 10,
		WeightBehavioral:      0.35,
		WeightTemporal:        0.30,
		WeightContent:         0.35,
		RepoBoost:             0.5,
		ReportFloor:           0.15,
		DetectorTimeout:       2 * time.Second,
		EventTimeout:          5 * time.Second,
		ProfileCacheSize:      50000,
		ProfileTTL:            30 * 24 * time.Hour,
		CriticalityCacheTTL:   2 * time.Hour,
	}
}
