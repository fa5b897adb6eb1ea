package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("default steps = %d, %v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("parse steps = %d, %v", got, err)
	}
	for _, raw := range []string{"0", "-2", "two"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1771776034"); err != nil || got != 1771776034 {
		t.Fatalf("parse version = %d, %v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("1771776120"); err != nil || got != 1771776120 {
		t.Fatalf("parse target = %d, %v", got, err)
	}
	if _, err := parseTarget("latest"); err == nil {
		t.Fatalf("expected error for non numeric target")
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("PENCA_TEST_FLAG", "")
	if !envBool("PENCA_TEST_FLAG") {
		t.Fatalf("empty flag must default to true")
	}
	t.Setenv("PENCA_TEST_FLAG", "off")
	if envBool("PENCA_TEST_FLAG") {
		t.Fatalf("expected false for off")
	}
}
