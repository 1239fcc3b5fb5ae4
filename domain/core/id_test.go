package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	// Generate many IDs
	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseColumnKey tests column key parsing
func TestParseColumnKey(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnKey
		hasError bool
	}{
		{"Preço", ColumnKey("Preço"), false},
		{"Qtd_Vendidos", ColumnKey("Qtd_Vendidos"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseColumnKey(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

func TestFingerprintShort(t *testing.T) {
	fp := NewFingerprint([]byte("dataset bytes"))
	if len(fp.String()) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(fp.String()))
	}
	if len(fp.Short()) != 12 {
		t.Errorf("Expected 12-character short form, got %q", fp.Short())
	}
	if fp.String()[:12] != fp.Short() {
		t.Error("Expected Short to be a prefix of the full fingerprint")
	}

	tiny := Fingerprint("abc")
	if tiny.Short() != "abc" {
		t.Errorf("Expected short fingerprints to pass through, got %q", tiny.Short())
	}
}

func TestHashEquality(t *testing.T) {
	a := NewHash([]byte("same"))
	b := NewHash([]byte("same"))
	c := NewHash([]byte("different"))

	if !a.Equals(b) {
		t.Error("Expected identical inputs to hash equal")
	}
	if a.Equals(c) {
		t.Error("Expected different inputs to hash differently")
	}
	if a.IsEmpty() {
		t.Error("Expected non-empty hash")
	}
}
