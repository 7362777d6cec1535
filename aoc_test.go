package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=93`,
			want:    sample{want: "93"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestParseSampleNoWant(t *testing.T) {
	if got, ok := parseSample("foo", "// D1p1 solves part one."); ok {
		t.Errorf("ParseSample = %v; want no sample", got)
	}
}

func TestExtractSamples(t *testing.T) {
	src := []byte(`package main

/*
want=24

1,2 -> 3,2
*/
func (s *solver) D14p1() any { return nil }

// want=93
func (s *solver) D14p2() any { return nil }

// helper has no sample.
func helper() {}
`)
	got := extractSamples(src)
	want := map[string]sample{
		"D14p1": {want: "24", input: "1,2 -> 3,2\n"},
		"D14p2": {want: "93", input: "1,2 -> 3,2\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type fakeSolver struct {
	*Puzzle
}

func (fakeSolver) D2p2() any  { return 4 }
func (fakeSolver) D2p1() any  { return 3 }
func (fakeSolver) D10p1() any { return 5 }
func (fakeSolver) Other() any { return 0 }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&fakeSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days; want 2", len(days))
	}
	var parts []string
	for _, ps := range days[2].parts {
		parts = append(parts, ps.Name)
	}
	if diff := cmp.Diff([]string{"D2p1", "D2p2"}, parts); diff != "" {
		t.Errorf("day 2 parts mismatch (-want +got):\n%s", diff)
	}
	if got := days[10].parts[0].fn(); got != 5 {
		t.Errorf("D10p1() = %v; want 5", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q; want %q", got, "b")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v; want 0", got)
	}
}
