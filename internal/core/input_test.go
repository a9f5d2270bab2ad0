package core

import "testing"

func TestKeyActionRoundTrip(t *testing.T) {
	for n := 1; n <= 9; n++ {
		a, ok := KeyAction(n)
		if !ok {
			t.Fatalf("KeyAction(%d) not ok", n)
		}
		got, ok := a.KeyNumber()
		if !ok || got != n {
			t.Errorf("KeyAction(%d).KeyNumber() = %d, %v", n, got, ok)
		}
	}

	if _, ok := KeyAction(0); ok {
		t.Error("KeyAction(0) should be rejected")
	}
	if _, ok := ActionConfirm.KeyNumber(); ok {
		t.Error("ActionConfirm is not a keypad action")
	}
}

func TestInputFrameKeys(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionKey9)
	f.Set(ActionKey1)
	f.Set(ActionUp)

	keys := f.Keys()
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 9 {
		t.Errorf("Keys() = %v, expected [1 9]", keys)
	}

	f.Clear()
	if f.Has(ActionKey1) || len(f.Keys()) != 0 {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionKey5.String() != "Key5" {
		t.Errorf("ActionKey5.String() = %q", ActionKey5.String())
	}
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
}
