package detect

import "github.com/forgewatch/forgewatch/pkg/config"

// Fusion is the combined scoring outcome for one event.
type Fusion struct {
	Base          float64
	Final         float64
	PrimaryMethod string
}

// Fuser combines the detector scores into the final anomaly score.
type Fuser struct {
	cfg *config.DetectionConfig
}

// NewFuser creates a score fuser.
func NewFuser(cfg *config.DetectionConfig) *Fuser {
	return &Fuser{cfg: cfg}
}

// Fuse computes base = wb*b + wt*t + wc*c, then scales by the
// repository criticality multiplier and clips to [0,1]. The primary
// method is the detector with the largest weighted contribution; ties
// break content > temporal > behavioral.
func (f *Fuser) Fuse(behavioral, temporal, content, criticality float64) Fusion {
	wb := f.cfg.WeightBehavioral * behavioral
	wt := f.cfg.WeightTemporal * temporal
	wc := f.cfg.WeightContent * content

	base := wb + wt + wc
	final := clip(base*(1+f.cfg.RepoBoost*criticality), 0, 1)

	primary := NameContent
	best := wc
	if wt > best {
		primary, best = NameTemporal, wt
	}
	if wb > best {
		primary = NameBehavioral
	}

	return Fusion{
		Base:          base,
		Final:         final,
		PrimaryMethod: primary,
	}
}
