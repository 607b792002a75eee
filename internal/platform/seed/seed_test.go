package seed

import "testing"

func TestParseRoster(t *testing.T) {
	entries, err := Parse("1:John Doe, 2:Jane Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[0].Name != "John Doe" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].ID != 2 || entries[1].Name != "Jane Smith" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestParseRosterEmpty(t *testing.T) {
	entries, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestParseRosterInvalid(t *testing.T) {
	if _, err := Parse("no-colon"); err == nil {
		t.Fatal("expected error for missing separator")
	}
	if _, err := Parse("x:Name"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if _, err := Parse("1:A,1:B"); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}
