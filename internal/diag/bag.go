package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a fixed cap (--max-diagnostics).
type Bag struct {
	items []Diagnostic
	limit uint16
}

// NewBag создаёт Bag с лимитом maxItems; отрицательный лимит считается нулём,
// слишком большой обрезается до MaxUint16.
func NewBag(maxItems int) *Bag {
	limit, err := safecast.Conv[uint16](max(maxItems, 0))
	if err != nil {
		limit = math.MaxUint16
	}
	return &Bag{limit: limit}
}

// Add appends d unless the cap is reached; false means dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.limit) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the limit.
func (b *Bag) Cap() uint16 { return b.limit }

// Len returns the number of stored diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items exposes the backing slice. Не модифицировать.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any diagnostic is SevError.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Merge appends other's items, raising the cap when they do not fit: per-file
// bags were already capped when they were filled.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > int(b.limit) {
		b.limit = uint16(min(total, math.MaxUint16))
	}
	b.items = append(b.items, other.items...)
}

// Sort orders by file, start, end, severity (errors first) and code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code at the same primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span [3]uint32
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, [3]uint32{uint32(d.Primary.File), d.Primary.Start, d.Primary.End}}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
