package grid

import "testing"

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	for _, k := range []Kind{KindText, KindBadge, KindSparkline, KindStub, KindBox, KindFlex, KindStack} {
		if _, ok := r.renderers[k]; !ok {
			t.Errorf("no builtin renderer for %s", k)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	s := &nopSurface{w: 100, h: 100}
	th := DefaultTheme()

	called := false
	r.Register(KindText, func(*Registry, Surface, CellRecord, Instruction, *Theme) {
		called = true
	})
	r.Draw(s, CellRecord{W: 100, H: 28}, Text("x"), th)
	if !called {
		t.Error("replacement renderer was not dispatched")
	}

	// nil removes
	called = false
	r.Register(KindText, nil)
	r.Draw(s, CellRecord{W: 100, H: 28}, Text("x"), th)
	if called {
		t.Error("removed renderer was dispatched")
	}
}

func TestRegistryUnknownKindNoop(t *testing.T) {
	r := NewRegistry()
	s := &nopSurface{w: 100, h: 100}
	// Must not panic or draw for unknown and none kinds.
	r.Draw(s, CellRecord{W: 100, H: 28}, Instruction{Kind: Kind(99)}, DefaultTheme())
	r.Draw(s, CellRecord{W: 100, H: 28}, Instruction{}, DefaultTheme())
}

func TestRegistryRecoversPanic(t *testing.T) {
	r := NewRegistry()
	r.Register(KindStub, func(*Registry, Surface, CellRecord, Instruction, *Theme) {
		panic("renderer bug")
	})
	// One failing renderer must not take down the frame.
	r.Draw(&nopSurface{}, CellRecord{W: 100, H: 28}, Stub("x"), DefaultTheme())
}

func TestRegistryCompositeRecursion(t *testing.T) {
	r := NewRegistry()
	s := &nopSurface{w: 200, h: 200}
	var drawn []string
	r.Register(KindText, func(_ *Registry, _ Surface, _ CellRecord, ins Instruction, _ *Theme) {
		drawn = append(drawn, ins.Text)
	})

	ins := Flex(DirRow, Text("a"), Stack(Text("b"), Text("c")))
	r.Draw(s, CellRecord{W: 200, H: 40}, ins, DefaultTheme())

	if len(drawn) != 3 || drawn[0] != "a" || drawn[1] != "b" || drawn[2] != "c" {
		t.Errorf("drawn children = %v, want [a b c]", drawn)
	}
}

func TestKindString(t *testing.T) {
	if KindSparkline.String() != "Sparkline" {
		t.Errorf("KindSparkline.String() = %q", KindSparkline.String())
	}
	if !KindFlex.Composite() || KindText.Composite() {
		t.Error("Composite() misclassifies kinds")
	}
}
