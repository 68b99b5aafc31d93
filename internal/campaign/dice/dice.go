package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Roller 是注入引擎的骰子源：任务判定和抢工都掷 2d12。
// 测试/回放时用固定 seed 构造，可得到可复现的点数序列。
type Roller interface {
	Roll2D12() int
}

type rngRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New 创建一个可播种的骰子源；seed 为 0 时用当前时间播种。
func New(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rngRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *rngRoller) Roll2D12() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(12) + 1 + r.rng.Intn(12) + 1
}
