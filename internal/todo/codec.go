package todo

import "strings"

// Tags used in a display string. The done tag always comes first.
const (
	doneTag = "[DONE] "
)

func priorityTag(p Priority) string {
	return "[" + p.String() + "] "
}

// Encode renders t as its display string:
//
//	[DONE] [High] text
//	[Low] text
//
// A priority outside the three known levels is written as Medium.
func Encode(t Task) string {
	var b strings.Builder
	if t.Done {
		b.WriteString(doneTag)
	}
	b.WriteString(priorityTag(t.Priority))
	b.WriteString(t.Text)
	return b.String()
}

// EncodeAll projects tasks onto their display strings, in order.
func EncodeAll(tasks []Task) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = Encode(t)
	}
	return lines
}

// Decode parses a display string back into a Task. It never fails: a line
// without a priority tag gets DefaultPriority and the whole remainder becomes
// the text.
func Decode(line string) Task {
	line = strings.TrimSuffix(line, "\r")
	t := Task{Priority: DefaultPriority}

	if rest, ok := strings.CutPrefix(line, doneTag); ok {
		t.Done = true
		line = rest
	}
	for _, p := range Priorities() {
		if rest, ok := strings.CutPrefix(line, priorityTag(p)); ok {
			t.Priority = p
			line = rest
			break
		}
	}
	t.Text = line
	return t
}
