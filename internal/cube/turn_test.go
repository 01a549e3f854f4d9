package cube

import "testing"

func TestTurnDoubleAndInverse(t *testing.T) {
	if TurnRight.Double() != TurnRight+TurnRight {
		t.Error("Double should equal adding the turn to itself")
	}
	if TurnRight.Inverse() != TurnRight+TurnRight+TurnRight {
		t.Error("Inverse should equal three quarter turns")
	}
}

func TestIsBaseMove(t *testing.T) {
	tests := []struct {
		name string
		t    Turn
		want bool
	}{
		{"R is base", TurnRight, true},
		{"R2 is not base", TurnRight.Double(), false},
		{"R' is not base", TurnRight.Inverse(), false},
		{"M is base", TurnMiddle, true},
		{"R+U is not base", TurnRight + TurnUp, false},
		{"identity is not base", Turn(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.IsBaseMove(); got != tt.want {
				t.Errorf("%s.IsBaseMove() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestToBaseTurns(t *testing.T) {
	tests := []struct {
		name string
		t    Turn
		want []Turn
	}{
		{"R", TurnRight, []Turn{TurnRight}},
		{"R2", TurnRight.Double(), []Turn{TurnRight, TurnRight}},
		{"R'", TurnRight.Inverse(), []Turn{TurnRight, TurnRight, TurnRight}},
		{"x rotation", nameToTurn["x"], []Turn{TurnLeft, TurnLeft, TurnLeft, TurnMiddle, TurnMiddle, TurnMiddle, TurnRight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.ToBaseTurns()
			if len(got) != len(tt.want) {
				t.Fatalf("ToBaseTurns() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ToBaseTurns()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOuterLayerTurnsCount(t *testing.T) {
	turns := OuterLayerTurns()
	if len(turns) != 18 {
		t.Fatalf("OuterLayerTurns() has %d turns, want 18", len(turns))
	}
	seen := make(map[Turn]bool)
	for _, turn := range turns {
		if seen[turn] {
			t.Fatalf("OuterLayerTurns() has a duplicate: %v", turn)
		}
		seen[turn] = true
	}
}
