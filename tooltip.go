package airchart

import (
	"encoding/json"
)

// HitRegion is the invisible wedge used to detect the pointer over a
// record.
type HitRegion struct {
	Key   int64
	Start float64
	End   float64
	Inner float64
	Outer float64
}

// LabelEntry is the value of a record in a band, drawn at the radius of
// the value. Rotate and Counter cancel each other so the text stays
// upright.
type LabelEntry struct {
	Key     int64
	Band    string
	Angle   float64
	Radius  float64
	Rotate  float64
	Counter float64
	Text    string
}

func (e LabelEntry) Pos() Point {
	return PolarPoint(e.Angle, e.Radius)
}

type TooltipIndex struct {
	regions []HitRegion
	entries []LabelEntry
	keys    map[int64][]int
}

func NewTooltipIndex(s Series, ps PolarScale, inner, outer float64, bands ...Band) TooltipIndex {
	ix := TooltipIndex{
		regions: make([]HitRegion, 0, s.Len()),
		keys:    make(map[int64][]int),
	}
	for _, r := range s.Records() {
		start, end, ok := ps.Wedge(r.Key)
		if !ok {
			continue
		}
		ix.regions = append(ix.regions, HitRegion{
			Key:   r.Key,
			Start: start,
			End:   end,
			Inner: inner,
			Outer: outer,
		})
		center := start + ps.Bandwidth()/2
		for _, b := range bands {
			var value float64
			if b.Column == TempBand {
				value = r.Temp
			} else {
				v, ok := r.Value(b.Column)
				if !ok {
					continue
				}
				value = v
			}
			ix.keys[r.Key] = append(ix.keys[r.Key], len(ix.entries))
			ix.entries = append(ix.entries, LabelEntry{
				Key:     r.Key,
				Band:    b.Name,
				Angle:   center,
				Radius:  b.Scale(value),
				Rotate:  textRotation(center),
				Counter: -textRotation(center),
				Text:    formatNumber(value),
			})
		}
	}
	return ix
}

func (ix TooltipIndex) Regions() []HitRegion {
	return ix.regions
}

func (ix TooltipIndex) Entries() []LabelEntry {
	return ix.entries
}

func (ix TooltipIndex) MarshalJSON() ([]byte, error) {
	v := struct {
		Regions []HitRegion
		Entries []LabelEntry
	}{
		Regions: ix.regions,
		Entries: ix.entries,
	}
	return json.Marshal(v)
}

func (ix TooltipIndex) Has(key int64) bool {
	return len(ix.keys[key]) > 0
}

// EntriesOf returns the label entries tagged with key, in band order.
func (ix TooltipIndex) EntriesOf(key int64) []LabelEntry {
	var list []LabelEntry
	for _, i := range ix.keys[key] {
		list = append(list, ix.entries[i])
	}
	return list
}

// Visible returns the entries shown in the given hover state.
func (ix TooltipIndex) Visible(state Hover) []LabelEntry {
	key, ok := state.Key()
	if !ok {
		return nil
	}
	return ix.EntriesOf(key)
}

func (ix TooltipIndex) IsVisible(state Hover, e LabelEntry) bool {
	key, ok := state.Key()
	return ok && key == e.Key
}

// Order returns the hit-regions in painting order: the hovered record,
// if any, comes last so that it is drawn above its neighbours.
func (ix TooltipIndex) Order(state Hover) []HitRegion {
	key, ok := state.Key()
	if !ok {
		return ix.regions
	}
	var (
		list = make([]HitRegion, 0, len(ix.regions))
		last []HitRegion
	)
	for _, r := range ix.regions {
		if r.Key == key {
			last = append(last, r)
			continue
		}
		list = append(list, r)
	}
	return append(list, last...)
}

// Enter moves to hovering key. Keys without entries leave the state
// unchanged.
func (ix TooltipIndex) Enter(state Hover, key int64) Hover {
	if !ix.Has(key) {
		return state
	}
	return state.enter(key)
}

func (ix TooltipIndex) Leave(state Hover, key int64) Hover {
	return state.leave(key)
}

// Hover is the interaction state of the tooltip layer: either idle or
// hovering one key. The zero value is idle.
type Hover struct {
	key      int64
	hovering bool
}

func Idle() Hover {
	return Hover{}
}

func Hovering(key int64) Hover {
	return Hover{
		key:      key,
		hovering: true,
	}
}

func (h Hover) Key() (int64, bool) {
	return h.key, h.hovering
}

func (h Hover) IsIdle() bool {
	return !h.hovering
}

func (h Hover) enter(key int64) Hover {
	return Hovering(key)
}

func (h Hover) leave(key int64) Hover {
	if h.hovering && h.key == key {
		return Idle()
	}
	return h
}
