package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunClassifiesInterCommoditySpread(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("F 1 2010-03-01\nF -1 2010-03-01\n")

	code := run([]string{"-catalog", "../../testdata/combinations.xml"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); !strings.HasPrefix(got, "Inter commodity spread ") {
		t.Fatalf("stdout = %q, want prefix %q", got, "Inter commodity spread ")
	}
}

func TestRunUnclassified(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("F 1 2010-03-01\n")

	code := run([]string{"-catalog", "../../testdata/combinations.xml"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "Unclassified" {
		t.Fatalf("stdout = %q, want %q", got, "Unclassified")
	}
}

func TestRunMissingCatalogFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunUnreadableCatalog(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-catalog", "testdata/does-not-exist.xml"}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
