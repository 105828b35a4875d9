package domain

import (
	"fmt"
	"strings"
	"time"
)

type PeriodStatus string

const (
	PeriodActive    PeriodStatus = "Active"
	PeriodCompleted PeriodStatus = "Completed"
	PeriodCancelled PeriodStatus = "Cancelled"
	PeriodDraft     PeriodStatus = "Draft"
)

type DonationPeriod struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	DateFrom time.Time    `json:"date_from"`
	DateTo   time.Time    `json:"date_to"`
	Status   PeriodStatus `json:"status"`
}

// Bucket is the derived lifecycle classification of a period. It is never
// stored; it is recomputed from the current instant on every listing.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketOngoing   Bucket = "ongoing"
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
	// BucketNone holds periods that fit no lifecycle bucket, e.g. an Active
	// period whose end date already passed. Status authority stays upstream;
	// nothing here computes an "expired" status for them.
	BucketNone Bucket = "none"
)

func ParseBucket(s string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case "", BucketAll:
		return BucketAll, nil
	case BucketOngoing:
		return BucketOngoing, nil
	case BucketUpcoming:
		return BucketUpcoming, nil
	case BucketCompleted:
		return BucketCompleted, nil
	}
	return "", fmt.Errorf("%w: unknown bucket %q", ErrValidation, s)
}

// Classify maps a period to its lifecycle bucket at the given instant.
// Pure and total: identical inputs always produce the same bucket.
func Classify(now, dateFrom, dateTo time.Time, status PeriodStatus) Bucket {
	if status == PeriodCompleted {
		return BucketCompleted
	}
	if status != PeriodActive {
		return BucketNone
	}
	if now.Before(dateFrom) {
		return BucketUpcoming
	}
	if !now.After(dateTo) {
		return BucketOngoing
	}
	// Active but already past dateTo: stale upstream status, belongs to
	// neither Ongoing nor Upcoming until upstream updates it.
	return BucketNone
}

func (p DonationPeriod) ClassifyAt(now time.Time) Bucket {
	return Classify(now, p.DateFrom, p.DateTo, p.Status)
}

// Matches reports whether the period matches a case-insensitive substring
// query against its name or location. An empty query matches everything.
func (p DonationPeriod) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}
