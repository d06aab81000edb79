package problemgen

import "testing"

func TestCheckAnswer_Numeric(t *testing.T) {
	q := &Question{
		Problem: Problem{Num1: 40, Num2: 2, Operation: OpAddition, Answer: 42},
		Format:  FormatNumeric,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"", false},
		{"abc", false},
		{"4 2", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 42/numeric) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := &Question{
		Problem: Problem{Num1: 3, Num2: 2, Operation: OpAddition, Answer: 5},
		Format:  FormatMultipleChoice,
		Choices: []int{7, 5, 12, 3},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"5", true},
		{"B", true},
		{"b", true},
		{"A", false},
		{"7", false},
		// 3 is a choice value, so it is not read as an index.
		{"3", false},
		{"2", true},
		{"4", false},
		{"9", false},
		{"", false},
		{"E", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, MC) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestTileLabel(t *testing.T) {
	if TileLabel(0) != "A" || TileLabel(3) != "D" {
		t.Errorf("unexpected labels %q %q", TileLabel(0), TileLabel(3))
	}
	if TileLabel(4) != "?" {
		t.Errorf("expected ? for out of range, got %q", TileLabel(4))
	}
}
