package utils

import "testing"

func TestStringHelper(t *testing.T) {
	s := NewStringHelper()

	if got := s.TrimWhitespace("  Test Brand \n"); got != "Test Brand" {
		t.Errorf("TrimWhitespace = %q", got)
	}

	if got := s.NormalizeWhitespace(" Classic \t tee\n\nwhite "); got != "Classic tee white" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}
}
