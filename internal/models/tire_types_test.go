package models

import "testing"

func TestValidTireSize(t *testing.T) {
	valid := []string{"205/55R16", "225/45R18", "195/65R15", "95/80R16"}
	for _, size := range valid {
		if !ValidTireSize(size) {
			t.Errorf("expected %q to be valid", size)
		}
	}

	invalid := []string{"", "205/55/16", "205-55R16", "abc/55R16", "205/55R1", "205/55R165", "20555R16"}
	for _, size := range invalid {
		if ValidTireSize(size) {
			t.Errorf("expected %q to be invalid", size)
		}
	}
}

func TestValidRating(t *testing.T) {
	for _, r := range []string{"A", "B", "G"} {
		if !ValidRating(r) {
			t.Errorf("expected %q to be valid", r)
		}
	}
	for _, r := range []string{"", "H", "a", "AA", "1"} {
		if ValidRating(r) {
			t.Errorf("expected %q to be invalid", r)
		}
	}
}

func TestPasswordSetAndMatches(t *testing.T) {
	var password Password
	if err := password.Set("s3cret-pass"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if password.Hash == "" {
		t.Fatalf("expected non-empty hash")
	}

	ok, err := password.Matches("s3cret-pass")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Fatalf("expected match for correct password")
	}

	ok, err = password.Matches("wrong")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}
