package health

import (
	"strings"
	"testing"
	"time"
)

var checklistNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func inspWithChecklist(daysAgo int, checklist map[string]ChecklistItem) Inspection {
	return Inspection{
		OccurredAt: checklistNow.AddDate(0, 0, -daysAgo),
		Checklist:  checklist,
	}
}

func failed() ChecklistItem { return ChecklistItem{OK: false} }
func passed() ChecklistItem { return ChecklistItem{OK: true} }

func TestRecentFailureIssue_NonSafetyItem(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(2, map[string]ChecklistItem{
			"wipers": failed(),
			"horn":   passed(),
		}),
	}

	issue, ok := e.recentFailureIssue(checklistNow, inspections)
	if !ok {
		t.Fatal("expected issue")
	}
	if issue.Severity != SeverityWarning {
		t.Errorf("severity = %q, want warning", issue.Severity)
	}
	if !strings.Contains(issue.Message, "Wipers") {
		t.Errorf("message = %q, want mention of Wipers", issue.Message)
	}
	if strings.Contains(issue.Message, "Horn") {
		t.Errorf("message = %q, passing item should not appear", issue.Message)
	}
}

func TestRecentFailureIssue_SafetyCriticalEscalates(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{
			"brake_lights": failed(),
			"wipers":       failed(),
		}),
	}

	issue, ok := e.recentFailureIssue(checklistNow, inspections)
	if !ok {
		t.Fatal("expected issue")
	}
	if issue.Severity != SeverityCritical {
		t.Errorf("severity = %q, want critical", issue.Severity)
	}
}

func TestRecentFailureIssue_StaleInspectionSkipped(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(11, map[string]ChecklistItem{"brake_lights": failed()}),
	}

	if _, ok := e.recentFailureIssue(checklistNow, inspections); ok {
		t.Error("inspection older than the recent window should not flag")
	}
}

func TestRecentFailureIssue_AllPassing(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": passed()}),
	}

	if _, ok := e.recentFailureIssue(checklistNow, inspections); ok {
		t.Error("no failed items should mean no issue")
	}
}

func TestRecurringFailureIssue_BelowWindowSkipped(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(10, map[string]ChecklistItem{"wipers": failed()}),
	}

	if _, ok := e.recurringFailureIssue(inspections); ok {
		t.Error("2 inspections with window 3 should skip the recurring check")
	}
}

func TestRecurringFailureIssue_SafetyCritical(t *testing.T) {
	e := New(DefaultConfig(), nil)
	// Scenario: last 3 inspections each fail brake_lights.
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"brake_lights": failed()}),
		inspWithChecklist(15, map[string]ChecklistItem{"brake_lights": failed()}),
		inspWithChecklist(30, map[string]ChecklistItem{"brake_lights": failed()}),
	}

	issue, ok := e.recurringFailureIssue(inspections)
	if !ok {
		t.Fatal("expected issue")
	}
	if issue.Severity != SeverityCritical {
		t.Errorf("severity = %q, want critical", issue.Severity)
	}
	if !strings.Contains(issue.Message, "Brake Lights") {
		t.Errorf("message = %q, want mention of Brake Lights", issue.Message)
	}
}

func TestRecurringFailureIssue_TwoOfThree(t *testing.T) {
	e := New(DefaultConfig(), nil)
	// Failed twice in the window, passed once in between; still recurring.
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(15, map[string]ChecklistItem{"wipers": passed()}),
		inspWithChecklist(30, map[string]ChecklistItem{"wipers": failed()}),
	}

	issue, ok := e.recurringFailureIssue(inspections)
	if !ok {
		t.Fatal("expected issue")
	}
	if issue.Severity != SeverityWarning {
		t.Errorf("severity = %q, want warning", issue.Severity)
	}
}

func TestRecurringFailureIssue_SingleFailureNotRecurring(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(15, map[string]ChecklistItem{"wipers": passed()}),
		inspWithChecklist(30, map[string]ChecklistItem{"wipers": passed()}),
	}

	if _, ok := e.recurringFailureIssue(inspections); ok {
		t.Error("one failure in the window should not flag")
	}
}

func TestRecurringFailureIssue_OnlyWindowCounts(t *testing.T) {
	e := New(DefaultConfig(), nil)
	// Failures outside the 3-newest window must not count.
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(15, map[string]ChecklistItem{"wipers": passed()}),
		inspWithChecklist(30, map[string]ChecklistItem{"wipers": passed()}),
		inspWithChecklist(45, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(60, map[string]ChecklistItem{"wipers": failed()}),
	}

	if _, ok := e.recurringFailureIssue(inspections); ok {
		t.Error("failures outside the window must not count")
	}
}

func TestRecentAndRecurringFireIndependently(t *testing.T) {
	e := New(DefaultConfig(), nil)
	inspections := []Inspection{
		inspWithChecklist(1, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(15, map[string]ChecklistItem{"wipers": failed()}),
		inspWithChecklist(30, map[string]ChecklistItem{"wipers": passed()}),
	}

	if _, ok := e.recentFailureIssue(checklistNow, inspections); !ok {
		t.Error("recent check should fire")
	}
	if _, ok := e.recurringFailureIssue(inspections); !ok {
		t.Error("recurring check should fire")
	}
}

func TestEscalate(t *testing.T) {
	e := New(DefaultConfig(), nil)
	if got := e.escalate([]string{"wipers", "horn"}); got != SeverityWarning {
		t.Errorf("escalate(non-safety) = %q, want warning", got)
	}
	if got := e.escalate([]string{"wipers", "steering"}); got != SeverityCritical {
		t.Errorf("escalate(with steering) = %q, want critical", got)
	}
}
