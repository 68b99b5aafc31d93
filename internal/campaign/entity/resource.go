package entity

// clampResource 把资源值压进 [MinResource, MaxResource]。
func clampResource(v int) int {
	if v > MaxResource {
		return MaxResource
	}
	if v < MinResource {
		return MinResource
	}
	return v
}

// IncrementResource 手动调整单项资源，越界静默截断。
func (c *Campaign) IncrementResource(typ string, delta int) error {
	if _, ok := c.resources[typ]; !ok {
		return ErrUnknownResource
	}
	c.resources[typ] = clampResource(c.resources[typ] + delta)
	c.markDirty()
	return nil
}

// canAfford 所有负增量加起来不会把任何资源压到下限以下。
func (c *Campaign) canAfford(effects map[string]int) bool {
	for typ, delta := range effects {
		if delta < 0 && c.resources[typ]+delta < MinResource {
			return false
		}
	}
	return true
}

// applyEffects 一次性套用一组增减，上限截断。调用方先做 canAfford。
func (c *Campaign) applyEffects(effects map[string]int) {
	for typ, delta := range effects {
		c.resources[typ] = clampResource(c.resources[typ] + delta)
	}
}

// spendCost 按造价扣资源。cost 里都是正数。
func (c *Campaign) spendCost(cost map[string]int) {
	for typ, amount := range cost {
		c.resources[typ] = clampResource(c.resources[typ] - amount)
	}
}

// refundCost 退还造价，上限截断（可能退不满）。
func (c *Campaign) refundCost(cost map[string]int) {
	for typ, amount := range cost {
		c.resources[typ] = clampResource(c.resources[typ] + amount)
	}
}

// canAffordCost 能否付得起一份全正数的造价。
func (c *Campaign) canAffordCost(cost map[string]int) bool {
	for typ, amount := range cost {
		if c.resources[typ] < amount {
			return false
		}
	}
	return true
}

// SelectIncome 选定本回合收入。同回合重选只改标签不重复结算；
// 付不起的选项静默不生效（界面侧会置灰，这里兜底）。
func (c *Campaign) SelectIncome(income IncomeType) {
	effects, ok := IncomeEffects[income]
	if !ok {
		return
	}
	if c.income == income && c.incomeTurn == c.turn {
		return
	}
	relabel := c.incomeTurn == c.turn
	if !relabel {
		if !c.canAfford(effects) {
			return
		}
		c.applyEffects(effects)
	}
	c.income = income
	c.incomeTurn = c.turn
	c.markDirty()
}

// SelectEdict 选定本回合政令，规则同 SelectIncome。
func (c *Campaign) SelectEdict(edict EdictType) {
	effects, ok := EdictEffects[edict]
	if !ok {
		return
	}
	if c.edict == edict && c.edictTurn == c.turn {
		return
	}
	relabel := c.edictTurn == c.turn
	if !relabel {
		if !c.canAfford(effects) {
			return
		}
		c.applyEffects(effects)
	}
	c.edict = edict
	c.edictTurn = c.turn
	c.markDirty()
}

// HoldFestival 开庆典：花 1 财富 1 补给换 1 忠诚，每回合一次。
// 返回 false 表示本回合已办过或付不起，状态不变。
func (c *Campaign) HoldFestival() bool {
	if c.festivalUsed {
		return false
	}
	cost := map[string]int{ResourceWealth: 1, ResourceSupplies: 1}
	if !c.canAffordCost(cost) {
		return false
	}
	c.spendCost(cost)
	c.resources[ResourceLoyalty] = clampResource(c.resources[ResourceLoyalty] + 1)
	c.festivalUsed = true
	c.markDirty()
	return true
}
