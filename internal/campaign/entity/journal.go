package entity

func (c *Campaign) Events() []*EventEntry { return c.events }
func (c *Campaign) Notes() []*NoteEntry   { return c.notes }

func (c *Campaign) TurnHistory() []string { return c.turnHistory }

// AddEvent 记一条战役事件。
func (c *Campaign) AddEvent(title, description string) *EventEntry {
	e := &EventEntry{
		ID:          "event-" + c.newID(),
		Title:       title,
		Description: description,
		Turn:        c.turn,
	}
	c.events = append(c.events, e)
	c.markDirty()
	return e
}

// ResolveEvent 标记事件已处理/未处理。
func (c *Campaign) ResolveEvent(id string, resolved bool) bool {
	for _, e := range c.events {
		if e.ID == id {
			e.Resolved = resolved
			c.markDirty()
			return true
		}
	}
	return false
}

func (c *Campaign) DeleteEvent(id string) bool {
	for i, e := range c.events {
		if e.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			c.markDirty()
			return true
		}
	}
	return false
}

// AddNote 记一条玩家行动备注。
func (c *Campaign) AddNote(player, details string) *NoteEntry {
	n := &NoteEntry{
		ID:      "note-" + c.newID(),
		Turn:    c.turn,
		Player:  player,
		Details: details,
	}
	c.notes = append(c.notes, n)
	c.markDirty()
	return n
}

func (c *Campaign) UpdateNote(id, details string) bool {
	for _, n := range c.notes {
		if n.ID == id {
			n.Details = details
			c.markDirty()
			return true
		}
	}
	return false
}

func (c *Campaign) DeleteNote(id string) bool {
	for i, n := range c.notes {
		if n.ID == id {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			c.markDirty()
			return true
		}
	}
	return false
}
