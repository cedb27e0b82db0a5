package id

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"numeric string", "7", 7},
		{"negative numeric string", "-3", -3},
		{"plain string", "abc", "abc"},
		{"mixed string", "7a", "7a"},
		{"empty string", "", ""},
		{"int", 42, 42},
		{"int64", int64(42), 42},
		{"integral float", float64(7), 7},
		{"fractional float", 7.5, 7.5},
		{"bool passes through", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%v) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"string vs int", "7", 7, true},
		{"float vs int", float64(7), 7, true},
		{"string vs string", "abc", "abc", true},
		{"different ints", 7, 8, false},
		{"string vs other string", "abc", "abd", false},
		{"nil vs nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"array ids never match", []any{1}, []any{1}, false},
		{"array vs int", []any{1}, 1, false},
		{"object ids never match", map[string]any{"a": 1}, map[string]any{"a": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		ids  []any
		want int
	}{
		{"empty", nil, 1},
		{"numeric ids", []any{1, 2, 3}, 4},
		{"gap does not matter", []any{1, 9}, 10},
		{"numeric strings count", []any{"4", 2}, 5},
		{"json floats count", []any{float64(6)}, 7},
		{"non-numeric ignored", []any{"a", "b"}, 1},
		{"mixed", []any{"a", 3, "b"}, 4},
		{"nil ids ignored", []any{nil, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.ids); got != tt.want {
				t.Errorf("Next(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}

func TestUUID(t *testing.T) {
	a, b := UUID(), UUID()
	if len(a) != 36 {
		t.Errorf("UUID length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("consecutive UUIDs collided")
	}
}
