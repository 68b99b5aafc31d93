package entity

import (
	"fmt"
	"os"
	"testing"

	"Stronghold/internal/shared/gameconfig/catalog"
)

func TestMain(m *testing.M) {
	catalog.Load()
	os.Exit(m.Run())
}

// scriptRoller 按脚本出点数，保证结算可复现。
type scriptRoller struct {
	rolls []int
	i     int
}

func (s *scriptRoller) Roll2D12() int {
	v := s.rolls[s.i%len(s.rolls)]
	s.i++
	return v
}

// newTestCampaign 固定 id 序列 + 脚本骰子的战役。
func newTestCampaign(rolls ...int) *Campaign {
	n := 0
	opts := []Option{
		WithIDGen(func() string {
			n++
			return fmt.Sprintf("t%d", n)
		}),
	}
	if len(rolls) > 0 {
		opts = append(opts, WithRoller(&scriptRoller{rolls: rolls}))
	}
	return New("camp-test", opts...)
}

// setResources 测试里直接摆好资源面。
func setResources(c *Campaign, wealth, supplies, loyalty int) {
	c.resources[ResourceWealth] = wealth
	c.resources[ResourceSupplies] = supplies
	c.resources[ResourceLoyalty] = loyalty
}
