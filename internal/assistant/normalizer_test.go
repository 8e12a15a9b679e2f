package assistant

import (
	"reflect"
	"testing"
)

func TestNormalizeFixesTypos(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"what is the slary of bob", "what is the salary of bob"},
		{"show me the emplyee list", "show me the employee list"},
		{"COMAPNY overview", "company overview"},
		{"bitcion pirce please", "bitcoin price please"},
		{"nothing to fix here", "nothing to fix here"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"what is the slary of the higest paid emplyee",
		"etherum atl",
		"hello there",
		"avrage salry for the depatment",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeMatchesWholeWordsOnly(t *testing.T) {
	// "employe" inside a longer word must not be corrected.
	if got := Normalize("employees"); got != "employees" {
		t.Errorf("expected 'employees' unchanged, got %q", got)
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("What is the average Salary, please? salary!")
	want := []string{"average", "salary"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsDropsShortTokens(t *testing.T) {
	got := ExtractKeywords("is it an ok day to go")
	if len(got) != 1 || got[0] != "day" {
		t.Errorf("expected [day], got %v", got)
	}
}
