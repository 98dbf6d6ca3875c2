package config

import (
	"fmt"
	"math"
)

// Validator performs range and consistency checks on a loaded Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation check and returns the first failure.
func (v *Validator) ValidateAll() error {
	checks := []func() error{
		v.validatePoller,
		v.validateDetection,
		v.validateQueue,
		v.validateServer,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validatePoller() error {
	p := v.cfg.Poller
	if p.APIBaseURL == "" {
		return NewValidationError("poller", "api_base_url", ErrInvalidValue)
	}
	if p.PerPage < 1 || p.PerPage > 100 {
		return NewValidationError("poller", "per_page",
			fmt.Errorf("%w: must be 1-100, got %d", ErrInvalidValue, p.PerPage))
	}
	if p.SampleLowFraction < 0 || p.SampleLowFraction > 1 {
		return NewValidationError("poller", "sample_low_fraction",
			fmt.Errorf("%w: must be in [0,1], got %v", ErrInvalidValue, p.SampleLowFraction))
	}
	if p.FailureThreshold < 1 {
		return NewValidationError("poller", "failure_threshold",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, p.FailureThreshold))
	}
	if p.MaxCatchupPages < 1 {
		return NewValidationError("poller", "max_catchup_pages",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, p.MaxCatchupPages))
	}
	return nil
}

func (v *Validator) validateDetection() error {
	d := v.cfg.Detection
	if d.EWMAAlpha <= 0 || d.EWMAAlpha >= 1 {
		return NewValidationError("detection", "ewma_alpha",
			fmt.Errorf("%w: must be in (0,1), got %v", ErrInvalidValue, d.EWMAAlpha))
	}
	if d.WarmupSamples < 1 {
		return NewValidationError("detection", "warmup_samples",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, d.WarmupSamples))
	}
	if d.MahalanobisSamples < d.WarmupSamples {
		return NewValidationError("detection", "mahalanobis_samples",
			fmt.Errorf("%w: must be >= warmup_samples (%d), got %d",
				ErrInvalidValue, d.WarmupSamples, d.MahalanobisSamples))
	}
	sum := d.WeightBehavioral + d.WeightTemporal + d.WeightContent
	if math.Abs(sum-1.0) > 1e-9 {
		return NewValidationError("detection", "weights",
			fmt.Errorf("%w: fusion weights must sum to 1.0, got %v", ErrInvalidValue, sum))
	}
	if d.ReportFloor < 0 || d.ReportFloor > 1 {
		return NewValidationError("detection", "report_floor",
			fmt.Errorf("%w: must be in [0,1], got %v", ErrInvalidValue, d.ReportFloor))
	}
	if d.DetectorTimeout <= 0 || d.EventTimeout <= 0 {
		return NewValidationError("detection", "detector_timeout", ErrInvalidValue)
	}
	if d.EventTimeout < d.DetectorTimeout {
		return NewValidationError("detection", "event_timeout",
			fmt.Errorf("%w: must be >= detector_timeout", ErrInvalidValue))
	}
	if d.ProfileCacheSize < 1 {
		return NewValidationError("detection", "profile_cache_size",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, d.ProfileCacheSize))
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, q.WorkerCount))
	}
	if q.BatchSize < 1 {
		return NewValidationError("queue", "batch_size",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, q.BatchSize))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateServer() error {
	if v.cfg.Server.ListenAddr == "" {
		return NewValidationError("server", "listen_addr", ErrInvalidValue)
	}
	return nil
}
