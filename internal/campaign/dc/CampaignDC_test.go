package dc

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/shared/gameconfig/catalog"
)

func TestMain(m *testing.M) {
	catalog.Load()
	os.Exit(m.Run())
}

type memRepo struct {
	mu       sync.Mutex
	saves    []*entity.CampaignPersistSnapshot
	failures int
}

func (r *memRepo) LoadCampaign(_ context.Context, id string) (*entity.Campaign, error) {
	return entity.New(id), nil
}

func (r *memRepo) Snapshot(_ context.Context, s *entity.CampaignPersistSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return errors.New("storage down")
	}
	r.saves = append(r.saves, s)
	return nil
}

func (r *memRepo) lastSave() *entity.CampaignPersistSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func TestCampaignDC_脏检查与异步落盘(t *testing.T) {
	repo := &memRepo{}
	d := NewCampaignDC(repo)

	c, err := d.Load(context.Background(), "camp-dc")
	if err != nil {
		t.Fatalf("加载失败：%v", err)
	}

	// 没改动时 Flush 是空操作
	d.Flush(context.Background())
	if repo.lastSave() != nil {
		t.Fatalf("无脏数据不应落盘")
	}

	c.SelectIncome(entity.IncomeCollectTaxes)
	d.Flush(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("关闭失败：%v", err)
	}

	last := repo.lastSave()
	if last == nil || last.CampaignID != "camp-dc" {
		t.Fatalf("应落一版快照，got=%+v", last)
	}
	if last.State.Resources[entity.ResourceWealth] != 3 {
		t.Fatalf("快照应带最新状态，got=%d", last.State.Resources[entity.ResourceWealth])
	}
	if last.State.TurnHistory != nil {
		t.Fatalf("持久化快照不应带回合历史")
	}
	if d.IsDirty() {
		t.Fatalf("落盘后脏标记应已清除")
	}
}

func TestCampaignDC_同步落盘失败后重排(t *testing.T) {
	repo := &memRepo{failures: 1}
	d := NewCampaignDC(repo)

	c, _ := d.Load(context.Background(), "camp-dc2")
	c.HoldFestival()

	if err := d.FlushSync(context.Background()); err == nil {
		t.Fatalf("存储故障时 FlushSync 应报错")
	}

	// 失败的快照已重排，关闭时由写循环补写
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("关闭失败：%v", err)
	}
	if repo.lastSave() == nil {
		t.Fatalf("重排的快照应在关闭时补写")
	}
}

func TestCampaignDC_高版本快照覆盖低版本(t *testing.T) {
	repo := &memRepo{failures: 2}
	d := NewCampaignDC(repo)

	c, _ := d.Load(context.Background(), "camp-dc3")
	c.SelectIncome(entity.IncomeCollectTaxes)
	d.Flush(context.Background())
	c.SelectEdict(entity.EdictHarvest)
	d.Flush(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("关闭失败：%v", err)
	}

	last := repo.lastSave()
	if last == nil {
		t.Fatalf("最终应有一版落盘")
	}
	if last.State.Resources[entity.ResourceSupplies] != 3 {
		t.Fatalf("落盘的应是带政令结算的新状态，got=%d", last.State.Resources[entity.ResourceSupplies])
	}
}
