package bezier

// CurveID identifies a curve within a Collection. IDs are never reused.
type CurveID int

// NoCurve is the ID of no curve.
const NoCurve CurveID = -1

// Collection is an ordered set of curves with one active curve.
//
// Curves are referenced by stable IDs rather than positions, so removing a
// curve never invalidates the IDs of the others.
type Collection struct {
	curves []*Curve
	active CurveID
	nextID CurveID
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{active: NoCurve}
}

// Len returns the number of curves.
func (c *Collection) Len() int {
	return len(c.curves)
}

// Curves returns the curves in insertion order. The slice is a copy; the
// curves are shared.
func (c *Collection) Curves() []*Curve {
	return append([]*Curve(nil), c.curves...)
}

// Add inserts curve, assigns it a new ID and makes it active.
// A curve already owned by a collection keeps its ID only in that one.
func (c *Collection) Add(curve *Curve) CurveID {
	curve.id = c.nextID
	c.nextID++
	c.curves = append(c.curves, curve)
	c.active = curve.id
	Logger().Info("bezier: curve created", "curve", curve.id, "count", len(c.curves))
	return curve.id
}

// Get returns the curve with the given ID.
func (c *Collection) Get(id CurveID) (*Curve, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	return c.curves[i], true
}

// ActiveID returns the ID of the active curve, or NoCurve.
func (c *Collection) ActiveID() CurveID {
	return c.active
}

// Active returns the active curve.
func (c *Collection) Active() (*Curve, bool) {
	return c.Get(c.active)
}

// SetActive makes the curve with the given ID active.
func (c *Collection) SetActive(id CurveID) error {
	if c.index(id) < 0 {
		return ErrNoCurve
	}
	c.active = id
	return nil
}

// Next activates the curve after the active one, wrapping around, and
// returns its ID. It returns NoCurve for an empty collection.
func (c *Collection) Next() CurveID {
	if len(c.curves) == 0 {
		c.active = NoCurve
		return NoCurve
	}
	i := c.index(c.active)
	c.active = c.curves[(i+1)%len(c.curves)].id
	return c.active
}

// Remove deletes the curve with the given ID. If it was active, the curve
// that took its slot becomes active, wrapping to the first curve; the
// active ID becomes NoCurve when the collection empties.
func (c *Collection) Remove(id CurveID) error {
	i := c.index(id)
	if i < 0 {
		return ErrNoCurve
	}
	c.curves = append(c.curves[:i], c.curves[i+1:]...)

	if id == c.active {
		switch {
		case len(c.curves) == 0:
			c.active = NoCurve
		case i < len(c.curves):
			c.active = c.curves[i].id
		default:
			c.active = c.curves[0].id
		}
	}
	Logger().Info("bezier: curve deleted", "curve", id, "count", len(c.curves))
	return nil
}

// Join edits curve to so that it continues curve from with continuity k.
func (c *Collection) Join(from, to CurveID, k Continuity) error {
	a, ok := c.Get(from)
	if !ok {
		return ErrNoCurve
	}
	b, ok := c.Get(to)
	if !ok {
		return ErrNoCurve
	}
	return Join(a, b, k)
}

func (c *Collection) index(id CurveID) int {
	if id == NoCurve {
		return -1
	}
	for i, curve := range c.curves {
		if curve.id == id {
			return i
		}
	}
	return -1
}
