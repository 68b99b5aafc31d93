package dc

import (
	"context"
	"sync"
	"time"

	"Stronghold/internal/campaign/app/port"
	"Stronghold/internal/campaign/entity"
)

// CampaignDC：脏检查 + 同步快照 + 异步写库。
// 快照带版本号，落库侧高版本胜出；写失败重排等待下一轮。
type CampaignDC struct {
	repo       port.CampaignRepository
	entity     *entity.Campaign
	flushEvery time.Duration

	mu      sync.Mutex
	pending *entity.CampaignPersistSnapshot
	version uint64
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// defaultFlushEvery 脏数据落库周期，启动时可按配置覆盖。
var defaultFlushEvery = 3000 * time.Millisecond

func SetDefaultFlushEvery(d time.Duration) {
	if d > 0 {
		defaultFlushEvery = d
	}
}

func NewCampaignDC(repo port.CampaignRepository) *CampaignDC {
	d := &CampaignDC{
		repo:       repo,
		flushEvery: defaultFlushEvery,
		wake:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go d.writerLoop()
	return d
}

func (d *CampaignDC) Load(ctx context.Context, campaignID string) (*entity.Campaign, error) {
	c, err := d.repo.LoadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	d.entity = c
	return c, nil
}

// Flush 只排队不落地，真正的写在 writerLoop。
// 注意：绕过 actor 直接改库的写（比如运维脚本）可能被这里的快照覆盖，
// 所有状态变更必须走 actor 命令。
func (d *CampaignDC) Flush(ctx context.Context) {
	if !d.IsDirty() {
		return
	}
	s, ok := d.buildNextSnapshot()
	if !ok {
		return
	}
	d.enqueueLatest(s)
}

// FlushSync 同步落一版，导入存档这类关键节点用。
func (d *CampaignDC) FlushSync(ctx context.Context) error {
	if !d.IsDirty() {
		return nil
	}
	s, ok := d.buildNextSnapshot()
	if !ok {
		return nil
	}
	if err := d.repo.Snapshot(ctx, s); err != nil {
		d.requeueOnError(s)
		return err
	}
	return nil
}

func (d *CampaignDC) IsDirty() bool {
	if d.entity == nil {
		return false
	}
	return d.entity.Dirty()
}

func (d *CampaignDC) Entity() *entity.Campaign {
	return d.entity
}

func (d *CampaignDC) FlushEvery() time.Duration {
	return d.flushEvery
}

func (d *CampaignDC) Close(ctx context.Context) error {
	d.Flush(ctx)

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.stop)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *CampaignDC) buildNextSnapshot() (*entity.CampaignPersistSnapshot, bool) {
	if d.entity == nil {
		return nil, false
	}
	d.mu.Lock()
	d.version++
	version := d.version
	d.mu.Unlock()

	s, ok := d.entity.BuildPersistSnapshot(version)
	if !ok {
		return nil, false
	}
	d.entity.ClearDirty()
	return s, true
}

func (d *CampaignDC) enqueueLatest(s *entity.CampaignPersistSnapshot) {
	if s == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *CampaignDC) popPending() *entity.CampaignPersistSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.pending
	d.pending = nil
	return s
}

func (d *CampaignDC) requeueOnError(s *entity.CampaignPersistSnapshot) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *CampaignDC) writerLoop() {
	defer close(d.done)

	for {
		select {
		case <-d.wake:
			d.consumePending()
		case <-d.stop:
			d.consumePending()
			return
		}
	}
}

func (d *CampaignDC) consumePending() {
	for {
		s := d.popPending()
		if s == nil {
			return
		}
		if err := d.repo.Snapshot(context.TODO(), s); err != nil {
			// 写库失败时重排当前快照；若已有更新快照，会被更高 version 覆盖。
			d.requeueOnError(s)
			time.Sleep(200 * time.Millisecond)
			continue
		}
	}
}
