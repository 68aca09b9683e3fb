package utils

import (
	"reflect"
	"testing"
)

func TestValidateRequiredString(t *testing.T) {
	if _, err := ValidateRequiredString("   ", "name"); err == nil {
		t.Fatalf("expected error for blank value")
	} else if err.Error() != "name is required" {
		t.Fatalf("unexpected error message: %v", err)
	}

	got, err := ValidateRequiredString("  a  ", "name")
	if err != nil {
		t.Fatalf("ValidateRequiredString: %v", err)
	}
	if got != "a" {
		t.Fatalf("expected trimmed %q, got %q", "a", got)
	}
}

func TestValidateUUID(t *testing.T) {
	if got := ValidateUUID(""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
	if got := ValidateUUID("not-a-uuid"); got != "" {
		t.Fatalf("malformed input should be dropped, got %q", got)
	}
	valid := "0b786f05-ac0f-4c53-8ee8-0b2ee21ff24a"
	if got := ValidateUUID(valid); got != valid {
		t.Fatalf("valid uuid should pass through, got %q", got)
	}
}

func TestParseSupportResources(t *testing.T) {
	if got := ParseSupportResources("a\n\n  b \n"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("newline string: got %v", got)
	}
	if got := ParseSupportResources([]any{"x", " y ", ""}); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("array payload: got %v", got)
	}
	if got := ParseSupportResources([]any{}); got != nil {
		t.Fatalf("empty array should be nil, got %v", got)
	}
	if got := ParseSupportResources(42); got != nil {
		t.Fatalf("non-string payload should be nil, got %v", got)
	}
}
