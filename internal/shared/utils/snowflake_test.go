package utils

import "testing"

func TestSnowflake_递增且不重复(t *testing.T) {
	gen, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("NewSnowflake err=%v", err)
	}
	seen := make(map[int64]struct{}, 1000)
	last := int64(-1)
	for i := 0; i < 1000; i++ {
		id := gen.NextID()
		if id <= last {
			t.Fatalf("期望 ID 单调递增，last=%d id=%d", last, id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("期望 ID 不重复，id=%d", id)
		}
		seen[id] = struct{}{}
		last = id
	}
}

func TestRandSeq_长度正确(t *testing.T) {
	if got := RandSeq(16); len(got) != 16 {
		t.Fatalf("期望长度 16，got=%q", got)
	}
}
