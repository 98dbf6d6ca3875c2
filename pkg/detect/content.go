package detect

import (
	"context"
	"fmt"
	"math"
	"path"
	"regexp"
	"strings"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
)

// secretPattern is one entry of the fixed secret-scanning table.
type secretPattern struct {
	name     string
	re       *regexp.Regexp
	severity float64
}

var secretPatterns = []secretPattern{
	{"aws_access_key", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`), 0.9},
	{"github_token", regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`), 0.9},
	{"private_key_header", regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`), 0.9},
	{"slack_token", regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`), 0.8},
	{"url_credentials", regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^/\s:@]+:[^@\s]+@\S+`), 0.8},
	{"connection_string", regexp.MustCompile(`(?i)\b(?:mongodb|postgres(?:ql)?|mysql|redis|amqps?)://\S+`), 0.7},
	{"signed_jwt", regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\b`), 0.7},
	{"generic_api_key", regexp.MustCompile(`(?i)(?:api[_-]?key|secret|token|password|passwd)\s*[:=]\s*['"]?[A-Za-z0-9_\-]{16,}`), 0.6},
}

var suspiciousFilePatterns = []string{
	".env", "id_rsa", "*.pem", "credentials*", "*secret*",
}

var binaryExtensions = map[string]bool{
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".jar": true, ".class": true, ".o": true, ".a": true,
}

// ContentDetector finds risky payload contents: leaked secrets, force
// pushes, mass deletions, credential-shaped files, and binary changes.
type ContentDetector struct {
	cfg *config.DetectionConfig
}

// NewContentDetector creates a content detector.
func NewContentDetector(cfg *config.DetectionConfig) *ContentDetector {
	return &ContentDetector{cfg: cfg}
}

func (d *ContentDetector) Name() string { return NameContent }

// Detect runs every sub-analysis; the score is their max.
func (d *ContentDetector) Detect(_ context.Context, in *Input) Result {
	res := Result{Explanation: map[string]any{}}

	switch in.Event.Type {
	case models.TypePush:
		if push, ok := in.Event.DecodePush(); ok {
			d.scanPush(&res, &push)
		}
	case models.TypeDelete:
		if del, ok := in.Event.DecodeDelete(); ok {
			d.scanDelete(&res, &del)
		}
	}

	for _, a := range res.Anomalies {
		res.Score = math.Max(res.Score, a.Severity)
	}
	return res
}

func (d *ContentDetector) scanPush(res *Result, push *models.PushPayload) {
	// Secret scan over commit messages. Matches are redacted to a
	// 16-char prefix plus length; the full secret never leaves here.
	for _, c := range push.Commits {
		for _, p := range secretPatterns {
			if m := p.re.FindString(c.Message); m != "" {
				res.Anomalies = append(res.Anomalies, Anomaly{
					Type:     "secret:" + p.name,
					Location: shortSHA(c.SHA),
					Match:    redact(m),
					Severity: p.severity,
				})
			}
		}
	}

	// Force push / history rewrite.
	if push.Forced {
		sev := 0.5
		if isDefaultBranch(push.Ref) {
			sev = 0.8
		}
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:     "force_push",
			Location: push.Ref,
			Severity: sev,
		})
	}

	// Mass deletion inside a push.
	var removed int
	for _, c := range push.Commits {
		removed += len(c.Removed)
	}
	if sev := massDeletionSeverity(removed); sev > 0 {
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:     "mass_deletion",
			Current:  float64(removed),
			Severity: sev,
		})
	}

	// Suspicious file categories and binary changes.
	var fileSev, binarySev float64
	for _, c := range push.Commits {
		for _, f := range changedFiles(c) {
			if matchesSuspiciousFile(f) {
				fileSev = math.Min(fileSev+0.6, 0.9)
				res.Anomalies = append(res.Anomalies, Anomaly{
					Type:     "suspicious_file",
					Location: f,
					Severity: 0.6,
				})
			}
			if binaryExtensions[strings.ToLower(path.Ext(f))] {
				binarySev = math.Min(binarySev+0.3, 0.5)
			}
		}
	}
	if binarySev > 0 {
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:     "binary_change",
			Severity: binarySev,
		})
	}
	if fileSev > 0 {
		// Cumulative category severity feeds the score even though each
		// per-file anomaly reports 0.6.
		res.Explanation["suspicious_file_severity"] = fileSev
		res.Score = math.Max(res.Score, fileSev)
	}
}

func (d *ContentDetector) scanDelete(res *Result, del *models.DeletePayload) {
	// Ref deletions are inherently destructive; branch deletes are
	// routine, tag and branch removal on protected-looking names less so.
	sev := 0.3
	if del.RefType == "branch" && isDefaultBranchName(del.Ref) {
		sev = 0.7
	}
	res.Anomalies = append(res.Anomalies, Anomaly{
		Type:     "ref_deletion",
		Location: fmt.Sprintf("%s/%s", del.RefType, del.Ref),
		Severity: sev,
	})
}

func massDeletionSeverity(removed int) float64 {
	switch {
	case removed >= 50:
		return 0.9
	case removed >= 10:
		return 0.7
	default:
		return 0
	}
}

func changedFiles(c models.PushCommit) []string {
	files := make([]string, 0, len(c.Added)+len(c.Removed)+len(c.Modified))
	files = append(files, c.Added...)
	files = append(files, c.Removed...)
	files = append(files, c.Modified...)
	return files
}

func matchesSuspiciousFile(file string) bool {
	base := strings.ToLower(path.Base(file))
	for _, pattern := range suspiciousFilePatterns {
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func isDefaultBranch(ref string) bool {
	return ref == "refs/heads/main" || ref == "refs/heads/master"
}

func isDefaultBranchName(name string) bool {
	return name == "main" || name == "master"
}

// redact normalizes a secret match to its first 16 characters plus the
// total length.
func redact(match string) string {
	prefix := match
	if len(prefix) > 16 {
		prefix = prefix[:16]
	}
	return fmt.Sprintf("%s[len=%d]", prefix, len(match))
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
