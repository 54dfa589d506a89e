package corpus

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCleanLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation stripped", "Hello, World! 123", "hello world 123"},
		{"lowercased", "ABC def", "abc def"},
		{"tabs to spaces", "a\tb", "a b"},
		{"runs collapsed", "a   b", "a b"},
		{"only punctuation", "?!...", ""},
		{"trailing punctuation", "end.", "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(cleanLine(tt.in)); got != tt.want {
				t.Errorf("cleanLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadCharset(t *testing.T) {
	s := NewStore()
	long := strings.Repeat("Hello, World! 123 ", 10)
	s.Load(long + "\n\nfoo")

	if s.Len() == 0 {
		t.Fatal("expected at least one surviving line")
	}

	rng := rand.New(rand.NewSource(1))
	line := s.RandomLine(rng)
	for _, ch := range line {
		ok := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == ' '
		if !ok {
			t.Fatalf("line contains %q outside [a-z0-9 ]", ch)
		}
	}
}

func TestLoadMergesShortLines(t *testing.T) {
	s := NewStore()
	// Twelve 9-char lines merge to well past MinLineLen.
	raw := strings.TrimSpace(strings.Repeat("wordyline\n", 12))
	s.Load(raw)

	if s.Len() != 1 {
		t.Fatalf("expected 1 merged line, got %d", s.Len())
	}
	line := s.RandomLine(rand.New(rand.NewSource(1)))
	if len(line) < MinLineLen {
		t.Errorf("merged line length %d below minimum %d", len(line), MinLineLen)
	}
}

func TestLoadFiltersShortLines(t *testing.T) {
	s := NewStore()
	s.Load("too short to survive")

	if s.Len() != 0 {
		t.Errorf("expected no surviving lines, got %d", s.Len())
	}
}

func TestRandomLineFallback(t *testing.T) {
	s := NewStore()
	rng := rand.New(rand.NewSource(1))

	line := s.RandomLine(rng)
	if string(line) != Fallback {
		t.Errorf("empty store should serve fallback, got %q", string(line))
	}

	// A load that produces nothing keeps the fallback behavior.
	s.Load("!!! ???")
	if string(s.RandomLine(rng)) != Fallback {
		t.Error("fallback lost after unproductive load")
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	s := NewStore()
	first := strings.Repeat("first corpus line with enough characters to survive filtering ", 3)
	second := strings.Repeat("second corpus line with enough characters to survive filtering ", 3)

	s.Load(first)
	if s.Len() == 0 {
		t.Fatal("first load produced nothing")
	}

	s.Load(second)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if strings.Contains(string(s.RandomLine(rng)), "first") {
			t.Fatal("old corpus content survived a reload")
		}
	}
}
