package testing

import (
	"strings"
	"testing"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
)

// ============================================================================
// Error Assertions
// ============================================================================

// AssertErrorCode checks if an error has a specific error code.
func AssertErrorCode(t testing.TB, err error, expectedCode errors.Code) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error with code %s, but got nil", expectedCode)
		return
	}

	actualCode := errors.GetCode(err)
	if actualCode != expectedCode {
		t.Errorf("expected error code %s, but got %s (error: %v)", expectedCode, actualCode, err)
	}
}

// AssertErrorContains checks if error message contains a substring.
func AssertErrorContains(t testing.TB, err error, substring string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, but got nil", substring)
		return
	}

	if !strings.Contains(err.Error(), substring) {
		t.Errorf("expected error to contain %q, but got: %v", substring, err)
	}
}

// ============================================================================
// Command Output Assertions
// ============================================================================

// AssertOutputOk asserts out is a success with the given message.
func AssertOutputOk(t testing.TB, out command.Output, message string) {
	t.Helper()

	if !out.IsOk() {
		t.Errorf("expected ok output %q, got %s (message: %q)", message, out.Result, out.Message)
		return
	}
	if out.Message != message {
		t.Errorf("expected message %q, got %q", message, out.Message)
	}
}

// AssertOutputErr asserts out is a failure with the given message and code.
func AssertOutputErr(t testing.TB, out command.Output, code errors.Code, message string) {
	t.Helper()

	if !out.IsErr() {
		t.Errorf("expected err output %q, got %s (message: %q)", message, out.Result, out.Message)
		return
	}
	if out.Message != message {
		t.Errorf("expected message %q, got %q", message, out.Message)
	}
	if out.Error == nil {
		t.Errorf("expected output error with code %s, got nil", code)
		return
	}
	if out.Error.Code != code {
		t.Errorf("expected output error code %s, got %s", code, out.Error.Code)
	}
}

// ============================================================================
// Report Assertions
// ============================================================================

// ReportLines splits a rendered report into its lines.
func ReportLines(report string) []string {
	report = strings.TrimSuffix(report, "\n")
	if report == "" {
		return nil
	}
	return strings.Split(report, "\n")
}

// AssertReportLines asserts the report consists of exactly lines.
func AssertReportLines(t testing.TB, report string, lines ...string) {
	t.Helper()

	got := ReportLines(report)
	if len(got) != len(lines) {
		t.Errorf("expected %d report lines, got %d:\n%s", len(lines), len(got), report)
		return
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Errorf("report line %d: expected %q, got %q", i, lines[i], got[i])
		}
	}
}

// AssertReportContains asserts some report line contains substring.
func AssertReportContains(t testing.TB, report, substring string) {
	t.Helper()

	for _, line := range ReportLines(report) {
		if strings.Contains(line, substring) {
			return
		}
	}
	t.Errorf("expected report to contain %q, got:\n%s", substring, report)
}
