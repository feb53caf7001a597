package coach

import "testing"

func TestDetectCrisis(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		category string
		found    bool
	}{
		{"suicide", "Sometimes I think about ending it all", CrisisSuicide, true},
		{"case insensitive", "I WANT TO DIE", CrisisSuicide, true},
		{"self harm", "I've been cutting again", CrisisSelfHarm, true},
		{"domestic abuse", "my partner hits me when he drinks", CrisisDomesticAbuse, true},
		{"child safety", "I think a child is in danger next door", CrisisChildAbuse, true},
		{"substance", "I can't stop using and it scares me", CrisisSubstance, true},
		{"ordinary heartbreak", "He broke up with me and I'm devastated", "", false},
		{"figurative language", "this breakup is killing my confidence", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, found := DetectCrisis(tc.message)
			if found != tc.found {
				t.Fatalf("found = %v, want %v", found, tc.found)
			}
			if category != tc.category {
				t.Errorf("category = %q, want %q", category, tc.category)
			}
		})
	}
}

func TestSuicideOutranksOtherCategories(t *testing.T) {
	category, found := DetectCrisis("I'm drinking too much and I want to die")
	if !found || category != CrisisSuicide {
		t.Errorf("expected suicide to win, got %q (found=%v)", category, found)
	}
}

func TestCrisisResponseAlwaysPresent(t *testing.T) {
	for _, cat := range crisisOrder {
		if CrisisResponse(cat) == "" {
			t.Errorf("missing response for category %s", cat)
		}
	}
	if CrisisResponse("unknown") == "" {
		t.Errorf("missing default response")
	}
}
