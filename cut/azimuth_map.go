package cut

// azimuthBucketResolution is the bucket width in degrees (spec §4.4: "one
// slot per 0.2° bucket"). Azimuth resolution in the source data is at
// least 0.5°, so two genuine radials never bucket together.
const azimuthBucketResolution = 0.2

// azimuthBuckets is ceil(360 / azimuthBucketResolution).
const azimuthBuckets = 1800

type azimuthEntry struct {
	azimuth float32
	radial  SimpleRadial
}

// azimuthMap is an ordered store of (azimuth, radial) pairs plus a parallel
// bucket-index vector of store positions, giving O(1) amortised
// lower_bound (spec §4.4, design note: "explicit data structure... parallel
// bucket vector of handles (indices, not pointers)").
type azimuthMap struct {
	store []azimuthEntry
	index []int
}

func azimuthBucket(azimuth float32) int {
	b := int(azimuth / azimuthBucketResolution)
	if b < 0 {
		b = 0
	}
	if b >= azimuthBuckets {
		b = azimuthBuckets - 1
	}
	return b
}

// insert places radial at azimuth in ascending-azimuth order and rebuilds
// the bucket index. Fails if an existing entry already occupies azimuth's
// bucket (spec §4.4, §7 IndexCollision).
func (m *azimuthMap) insert(azimuth float32, radial SimpleRadial) error {
	b := azimuthBucket(azimuth)
	for _, e := range m.store {
		if azimuthBucket(e.azimuth) == b {
			return newIndexCollision(azimuth, e.azimuth, b)
		}
	}

	pos := len(m.store)
	for i, e := range m.store {
		if e.azimuth > azimuth {
			pos = i
			break
		}
	}

	m.store = append(m.store, azimuthEntry{})
	copy(m.store[pos+1:], m.store[pos:])
	m.store[pos] = azimuthEntry{azimuth: azimuth, radial: radial}

	m.rebuildIndex()
	return nil
}

// rebuildIndex recomputes index so that index[b] is the store position of
// the first entry whose bucket is >= b; empty trailing buckets point one
// past the last element (spec §4.4 "empty tail buckets point to the final
// element" — here, off the end, since lower_bound treats len(store) as
// "not found").
func (m *azimuthMap) rebuildIndex() {
	m.index = make([]int, azimuthBuckets)
	si := 0
	for b := 0; b < azimuthBuckets; b++ {
		for si < len(m.store) && azimuthBucket(m.store[si].azimuth) < b {
			si++
		}
		m.index[b] = si
	}
}

// lowerBound returns the store position of the first entry with azimuth >=
// theta, or len(store) if none.
func (m *azimuthMap) lowerBound(theta float32) int {
	if len(m.store) == 0 {
		return 0
	}
	pos := m.index[azimuthBucket(theta)]
	for pos < len(m.store) && m.store[pos].azimuth < theta {
		pos++
	}
	return pos
}

func (m *azimuthMap) len() int { return len(m.store) }

// at returns the entry at store position i, wrapping circularly.
func (m *azimuthMap) at(i int) (float32, SimpleRadial) {
	e := m.store[i%len(m.store)]
	return e.azimuth, e.radial
}
