package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, special
// characters, whitespace, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "scholarship title",
			input: "Fully Funded PhD!! Scholarship",
			want:  "fully-funded-phd-scholarship",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "GoLang",
			want:  "golang",
		},
		{
			name:  "title with year",
			input: "DAAD Scholarships 2026",
			want:  "daad-scholarships-2026",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-how-s-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Masters & PhD @ Oxford",
			want:  "masters-phd-oxford",
		},
		{
			name:  "parentheses and brackets",
			input: "Version (2.0) [Beta]",
			want:  "version-2-0-beta",
		},
		{
			name:  "slashes become separators",
			input: "Frontend/Backend | Full Stack",
			want:  "frontend-backend-full-stack",
		},
		{
			name:  "hash and dollar",
			input: "Issue #42 costs $100",
			want:  "issue-42-costs-100",
		},

		// --- Whitespace handling ---
		{
			name:  "leading and trailing spaces",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "multiple consecutive spaces collapsed",
			input: "hello    world",
			want:  "hello-world",
		},
		{
			name:  "tabs and newlines collapsed",
			input: "hello\t\nworld",
			want:  "hello-world",
		},

		// --- Hyphen handling ---
		{
			name:  "leading hyphens",
			input: "---hello world",
			want:  "hello-world",
		},
		{
			name:  "trailing hyphens",
			input: "hello world---",
			want:  "hello-world",
		},
		{
			name:  "multiple hyphens between words",
			input: "hello---world",
			want:  "hello-world",
		},
		{
			name:  "single hyphen preserved",
			input: "well-known fact",
			want:  "well-known-fact",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "     ",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "all numbers",
			input: "123456",
			want:  "123456",
		},
		{
			name:  "date-like string",
			input: "2026-02-25",
			want:  "2026-02-25",
		},

		// --- Realistic titles ---
		{
			name:  "question title",
			input: "What is the Chevening Scholarship? A Complete Guide",
			want:  "what-is-the-chevening-scholarship-a-complete-guide",
		},
		{
			name:  "colon separated title",
			input: "Study in Germany: Tuition-Free Universities",
			want:  "study-in-germany-tuition-free-universities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	inputs := []string{
		"hello-world",
		"fully-funded-phd-scholarship",
		"a",
		"123",
		"Hello, World! 2026",
		"  !!weird--input__  ",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			once := Generate(s)
			twice := Generate(once)
			if twice != once {
				t.Errorf("Generate(Generate(%q)) = %q, want %q", s, twice, once)
			}
		})
	}
}

// TestGenerate_OutputAlphabet verifies slugs contain only lowercase
// alphanumerics and single inner hyphens, never at the edges.
func TestGenerate_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"Hello World",
		"ÜBER die Brücke!!",
		"--- A%%B^^C ---",
		"tabs\tand\nnewlines",
	}

	for _, input := range inputs {
		got := Generate(input)
		if got == "" {
			continue
		}
		if got[0] == '-' || got[len(got)-1] == '-' {
			t.Errorf("Generate(%q) = %q: leading or trailing hyphen", input, got)
		}
		prev := byte(0)
		for i := 0; i < len(got); i++ {
			c := got[i]
			valid := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
			if !valid {
				t.Errorf("Generate(%q) = %q: invalid byte %q", input, got, c)
			}
			if c == '-' && prev == '-' {
				t.Errorf("Generate(%q) = %q: consecutive hyphens", input, got)
			}
			prev = c
		}
	}
}
