package dice

import "testing"

func TestRoller_固定seed序列可复现(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if got, want := a.Roll2D12(), b.Roll2D12(); got != want {
			t.Fatalf("第 %d 次掷骰不一致：%d != %d", i, got, want)
		}
	}
}

func TestRoller_点数范围(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		got := r.Roll2D12()
		if got < 2 || got > 24 {
			t.Fatalf("2d12 期望范围 [2,24]，got=%d", got)
		}
	}
}
