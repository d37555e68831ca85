package todo

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		task     Task
		expected string
	}{
		{Task{"Buy milk", PriorityHigh, false}, "[High] Buy milk"},
		{Task{"Buy milk", PriorityMedium, false}, "[Medium] Buy milk"},
		{Task{"Buy milk", PriorityLow, false}, "[Low] Buy milk"},
		{Task{"Buy milk", PriorityHigh, true}, "[DONE] [High] Buy milk"},
		{Task{"Buy milk", Priority(0), false}, "[Medium] Buy milk"},
	}

	for _, test := range tests {
		result := Encode(test.task)
		if result != test.expected {
			t.Errorf("Encode(%+v) = %q, expected %q", test.task, result, test.expected)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		line     string
		expected Task
	}{
		{"[High] Buy milk", Task{"Buy milk", PriorityHigh, false}},
		{"[DONE] [Low] Walk dog", Task{"Walk dog", PriorityLow, true}},
		{"[Medium] x", Task{"x", PriorityMedium, false}},
		// malformed input degrades to defaults
		{"plain text", Task{"plain text", PriorityMedium, false}},
		{"[DONE] no priority", Task{"no priority", PriorityMedium, true}},
		{"[Urgent] thing", Task{"[Urgent] thing", PriorityMedium, false}},
		{"[High]no space", Task{"[High]no space", PriorityMedium, false}},
		{"[Low] [DONE] order matters", Task{"[DONE] order matters", PriorityLow, false}},
		{"[High] crlf\r", Task{"crlf", PriorityHigh, false}},
		{"", Task{"", PriorityMedium, false}},
	}

	for _, test := range tests {
		result := Decode(test.line)
		if result != test.expected {
			t.Errorf("Decode(%q) = %+v, expected %+v", test.line, result, test.expected)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	texts := []string{"Buy milk", "a", "call mom at 5 [work]", "ünïcödé"}
	for _, p := range Priorities() {
		for _, text := range texts {
			for _, done := range []bool{false, true} {
				task := Task{Text: text, Priority: p, Done: done}
				if got := Decode(Encode(task)); got != task {
					t.Errorf("Decode(Encode(%+v)) = %+v", task, got)
				}
			}
		}
	}
}

func TestEncodeAll(t *testing.T) {
	tasks := []Task{
		{"a", PriorityHigh, false},
		{"b", PriorityLow, true},
	}
	lines := EncodeAll(tasks)
	expected := []string{"[High] a", "[DONE] [Low] b"}
	if len(lines) != len(expected) {
		t.Fatalf("EncodeAll() returned %d lines, expected %d", len(lines), len(expected))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		label    string
		expected Priority
		ok       bool
	}{
		{"High", PriorityHigh, true},
		{"Medium", PriorityMedium, true},
		{"Low", PriorityLow, true},
		{"high", PriorityMedium, false},
		{"", PriorityMedium, false},
	}

	for _, test := range tests {
		p, ok := ParsePriority(test.label)
		if p != test.expected || ok != test.ok {
			t.Errorf("ParsePriority(%q) = (%v, %v), expected (%v, %v)", test.label, p, ok, test.expected, test.ok)
		}
	}
}

func TestPriorityLabels(t *testing.T) {
	labels := PriorityLabels()
	expected := []string{"High", "Medium", "Low"}
	if len(labels) != len(expected) {
		t.Fatalf("PriorityLabels() = %v", labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %d = %q, expected %q", i, labels[i], expected[i])
		}
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities() {
		if !p.Valid() {
			t.Errorf("%v.Valid() = false", p)
		}
	}
	if Priority(0).Valid() || Priority(4).Valid() {
		t.Error("out-of-range priority reported valid")
	}
}
