package health

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// recentFailureIssue reports checklist items that failed in the latest
// inspection, provided that inspection is recent enough to act on. Any
// safety-critical item among the failures escalates the issue to
// critical. Inspections must already be sorted newest first.
func (e *Engine) recentFailureIssue(now time.Time, inspections []Inspection) (Issue, bool) {
	if len(inspections) == 0 {
		return Issue{}, false
	}
	latest := inspections[0]
	if wholeDays(latest.OccurredAt, now) > e.cfg.RecentFailureWindowDays {
		return Issue{}, false
	}

	keys := failedKeys(latest)
	if len(keys) == 0 {
		return Issue{}, false
	}

	return Issue{
		Severity: e.escalate(keys),
		Message: fmt.Sprintf("Failed checklist items at last inspection: %s",
			e.labelList(keys)),
	}, true
}

// recurringFailureIssue reports checklist items that failed at least
// RecurringMinCount times across the RecurringWindowSize most recent
// inspections. A single-inspection view misses chronic problems that get
// superficially fixed between visits; this check surfaces them. Skipped
// entirely when the vehicle has fewer inspections than the window.
// Inspections must already be sorted newest first.
func (e *Engine) recurringFailureIssue(inspections []Inspection) (Issue, bool) {
	if len(inspections) < e.cfg.RecurringWindowSize {
		return Issue{}, false
	}
	window := inspections[:e.cfg.RecurringWindowSize]

	counts := make(map[string]int)
	for _, insp := range window {
		for _, key := range failedKeys(insp) {
			counts[key]++
		}
	}

	var recurring []string
	for key, n := range counts {
		if n >= e.cfg.RecurringMinCount {
			recurring = append(recurring, key)
		}
	}
	if len(recurring) == 0 {
		return Issue{}, false
	}
	sort.Strings(recurring)

	return Issue{
		Severity: e.escalate(recurring),
		Message: fmt.Sprintf("Recurring failures across last %d inspections: %s",
			e.cfg.RecurringWindowSize, e.labelList(recurring)),
	}, true
}

// failedKeys collects the checklist keys marked not-OK in one inspection,
// sorted so messages are deterministic.
func failedKeys(insp Inspection) []string {
	var keys []string
	for key, item := range insp.Checklist {
		if !item.OK {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// escalate returns critical when any key is safety-critical, warning
// otherwise.
func (e *Engine) escalate(keys []string) Severity {
	for _, key := range keys {
		if e.cfg.SafetyCriticalKeys[key] {
			return SeverityCritical
		}
	}
	return SeverityWarning
}

// labelList renders checklist keys as a comma-separated list of human
// labels.
func (e *Engine) labelList(keys []string) string {
	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = e.resolve(key)
	}
	return strings.Join(labels, ", ")
}
