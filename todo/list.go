// Package todo is a small to-do list with toggle, add and fade-out removal.
package todo

import (
	"strings"
	"time"
)

// FadeDuration is how long a removed item stays visible while fading out
const FadeDuration = 500 * time.Millisecond

// Item is one entry of the list
type Item struct {
	Text string
	Done bool

	removing  bool
	removedAt time.Time
}

// Removing reports whether the item is fading out
func (it Item) Removing() bool {
	return it.removing
}

// List holds the items in display order
type List struct {
	items []Item
}

// NewList creates a list with the given items, none done
func NewList(texts ...string) *List {
	l := &List{}
	for _, t := range texts {
		l.Add(t)
	}
	return l
}

// Items returns a copy of the current items, including fading ones
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items, including fading ones
func (l *List) Len() int {
	return len(l.items)
}

// Add appends a new item. Blank text is ignored.
func (l *List) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.items = append(l.items, Item{Text: text})
	return true
}

// Toggle flips the done state of item i
func (l *List) Toggle(i int) bool {
	if i < 0 || i >= len(l.items) || l.items[i].removing {
		return false
	}
	l.items[i].Done = !l.items[i].Done
	return true
}

// Remove starts the fade-out of item i; Sweep deletes it once faded
func (l *List) Remove(i int, now time.Time) bool {
	if i < 0 || i >= len(l.items) || l.items[i].removing {
		return false
	}
	l.items[i].removing = true
	l.items[i].removedAt = now
	return true
}

// Opacity returns 1 for a normal item, falling linearly to 0 while it fades
func (l *List) Opacity(i int, now time.Time) float64 {
	if i < 0 || i >= len(l.items) {
		return 0
	}
	it := l.items[i]
	if !it.removing {
		return 1
	}
	elapsed := now.Sub(it.removedAt)
	if elapsed >= FadeDuration {
		return 0
	}
	return 1 - float64(elapsed)/float64(FadeDuration)
}

// Fading reports whether any item is still fading out
func (l *List) Fading() bool {
	for _, it := range l.items {
		if it.removing {
			return true
		}
	}
	return false
}

// Sweep deletes items whose fade-out has finished and returns how many went
func (l *List) Sweep(now time.Time) int {
	kept := l.items[:0]
	removed := 0
	for _, it := range l.items {
		if it.removing && now.Sub(it.removedAt) >= FadeDuration {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	return removed
}
