package candidate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultNameSimilarityThreshold is the similarity ratio above which two
// normalized names are treated as the same person.
const DefaultNameSimilarityThreshold = 0.85

// Lister is the narrow slice of the candidate store the detector needs.
type Lister interface {
	List(ctx context.Context, limit int) ([]*Record, error)
}

// Detector flags candidates that already exist in the store. Detection is a
// best-effort courtesy: a failing store degrades to a negative answer
// instead of failing the conversation.
type Detector struct {
	store     Lister
	threshold float64
	logger    *zap.Logger
}

// NewDetector creates a duplicate detector backed by the given store. A
// non-positive threshold falls back to the default.
func NewDetector(store Lister, threshold float64, logger *zap.Logger) *Detector {
	if threshold <= 0 {
		threshold = DefaultNameSimilarityThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{store: store, threshold: threshold, logger: logger}
}

// identityCheck compares the incoming record against one stored record and
// reports a human-readable reason when they collide.
type identityCheck func(existing *Record) (bool, string)

// Check reports whether the partial record matches an already stored
// candidate. Checks run in order email, phone, name; the first match wins.
func (d *Detector) Check(ctx context.Context, rec *Record) (bool, string) {
	if d.store == nil {
		return false, ""
	}

	stored, err := d.store.List(ctx, 0)
	if err != nil {
		d.logger.Warn("duplicate check skipped, store unavailable", zap.Error(err))
		return false, ""
	}

	email := NormalizeEmail(rec.Email)
	phone := NormalizePhone(rec.Phone)
	name := NormalizeName(rec.FullName)

	checks := []identityCheck{
		func(existing *Record) (bool, string) {
			if email == "" || NormalizeEmail(existing.Email) != email {
				return false, ""
			}
			return true, fmt.Sprintf("email %s already registered", email)
		},
		func(existing *Record) (bool, string) {
			if phone == "" || NormalizePhone(existing.Phone) != phone {
				return false, ""
			}
			return true, "phone number already registered"
		},
		func(existing *Record) (bool, string) {
			existingName := NormalizeName(existing.FullName)
			if name == "" || existingName == "" || SimilarityRatio(name, existingName) <= d.threshold {
				return false, ""
			}
			return true, fmt.Sprintf("similar name already exists: %s", existing.FullName)
		},
	}

	for _, check := range checks {
		for _, existing := range stored {
			// A candidate never collides with their own session.
			if rec.SessionID != "" && existing.SessionID == rec.SessionID {
				continue
			}
			if match, reason := check(existing); match {
				return true, reason
			}
		}
	}

	return false, ""
}
