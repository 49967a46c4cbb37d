package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
)

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"sideways"}} {
		if err := run(args, logging.NewNop()); !errors.Is(err, errUsage) {
			t.Fatalf("run(%v): expected usage error, got %v", args, err)
		}
	}
}

func TestRun_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := run([]string{"up"}, logging.NewNop())
	if err == nil || err.Error() != "DATABASE_URL is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("default steps: got=%d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("explicit steps: got=%d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("-1"); err != nil || got != -1 {
		t.Fatalf("parse version -1: got=%d err=%v", got, err)
	}
	if _, err := parseVersion("-2"); err == nil {
		t.Fatalf("expected error for version -2")
	}
	if got, err := parseTarget("1"); err != nil || got != 1 {
		t.Fatalf("parse target: got=%d err=%v", got, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}
