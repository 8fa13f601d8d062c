package metadata

import (
	"testing"
)

func TestCategoryIsValid(t *testing.T) {
	tests := []struct {
		category     Category
		expectedBool bool
	}{
		{CategoryPilsen, true},
		{CategoryBock, true},
		{CategoryWitbier, true},
		{CategoryWeissbier, true},
		{CategoryIPA, true},
		{CategoryStout, true},
		{Category("bock"), false}, // Only normalized codes are valid.
		{Category("LAGER"), false},
		{Category(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if isValid := tt.category.IsValid(); isValid != tt.expectedBool {
				t.Errorf("Expected %v for %s, got %v", tt.expectedBool, tt.category, isValid)
			}
		})
	}
}

func TestNewCategory(t *testing.T) {
	tests := []struct {
		input         string
		expected      Category
		expectedError bool
	}{
		{"BOCK", CategoryBock, false},
		{"ipa", CategoryIPA, false},       // Should be converted to uppercase.
		{"  Stout ", CategoryStout, false}, // Should trim spaces.
		{"weissbier", CategoryWeissbier, false},
		{"lager", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			category, err := NewCategory(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Errorf("Expected error for input %q, but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Did not expect error for input %q, but got %v", tt.input, err)
			}
			if category != tt.expected {
				t.Errorf("Expected %s for input %q, got %s", tt.expected, tt.input, category)
			}
		})
	}
}

func TestCategoryDescription(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryPilsen, "Pilsen"},
		{CategoryWitbier, "Witbier"},
		{CategoryIPA, "IPA"},
		{Category("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if result := tt.category.Description(); result != tt.expected {
				t.Errorf("Expected %q for %s, got %q", tt.expected, tt.category, result)
			}
		})
	}
}

func TestCategoriesAreAllValid(t *testing.T) {
	categories := Categories()
	if len(categories) != 6 {
		t.Fatalf("Expected 6 categories, got %d", len(categories))
	}
	for _, category := range categories {
		if !category.IsValid() {
			t.Errorf("Expected %s to be valid", category)
		}
	}
}
