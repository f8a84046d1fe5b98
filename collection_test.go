package bezier

import (
	"errors"
	"testing"
)

func collectionOf(n int) (*Collection, []CurveID) {
	c := NewCollection()
	ids := make([]CurveID, n)
	for i := range ids {
		ids[i] = c.Add(NewCurve(Pt(float64(i), 0), Pt(float64(i), 1)))
	}
	return c, ids
}

func TestCollection_Add(t *testing.T) {
	c := NewCollection()
	if c.ActiveID() != NoCurve {
		t.Errorf("empty collection ActiveID = %v, want NoCurve", c.ActiveID())
	}
	if _, ok := c.Active(); ok {
		t.Error("empty collection has an active curve")
	}

	a := NewCurve()
	id := c.Add(a)
	if a.ID() != id || c.ActiveID() != id {
		t.Errorf("ID = %v, ActiveID = %v, want %v", a.ID(), c.ActiveID(), id)
	}
	got, ok := c.Get(id)
	if !ok || got != a {
		t.Error("Get did not return the added curve")
	}
	if id2 := c.Add(NewCurve()); id2 == id {
		t.Error("IDs reused")
	}
}

func TestCollection_Next(t *testing.T) {
	c, ids := collectionOf(3)
	if c.ActiveID() != ids[2] {
		t.Fatalf("ActiveID = %v, want last added %v", c.ActiveID(), ids[2])
	}
	want := []CurveID{ids[0], ids[1], ids[2], ids[0]}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("Next #%d = %v, want %v", i, got, w)
		}
	}

	if got := NewCollection().Next(); got != NoCurve {
		t.Errorf("Next on empty = %v, want NoCurve", got)
	}
}

func TestCollection_RemoveReassignsActive(t *testing.T) {
	c, ids := collectionOf(3)

	// Removing the middle active curve activates the one that took its slot.
	if err := c.SetActive(ids[1]); err != nil {
		t.Fatal(err)
	}
	if err := c.Remove(ids[1]); err != nil {
		t.Fatal(err)
	}
	if c.ActiveID() != ids[2] {
		t.Errorf("ActiveID = %v, want %v", c.ActiveID(), ids[2])
	}

	// Removing the last slot wraps to the first.
	if err := c.Remove(ids[2]); err != nil {
		t.Fatal(err)
	}
	if c.ActiveID() != ids[0] {
		t.Errorf("ActiveID = %v, want %v", c.ActiveID(), ids[0])
	}

	if err := c.Remove(ids[0]); err != nil {
		t.Fatal(err)
	}
	if c.ActiveID() != NoCurve || c.Len() != 0 {
		t.Errorf("ActiveID = %v, Len = %d, want NoCurve, 0", c.ActiveID(), c.Len())
	}
}

func TestCollection_RemoveInactiveKeepsActive(t *testing.T) {
	c, ids := collectionOf(3)
	if err := c.Remove(ids[0]); err != nil {
		t.Fatal(err)
	}
	if c.ActiveID() != ids[2] {
		t.Errorf("ActiveID = %v, want %v", c.ActiveID(), ids[2])
	}
	// IDs of the remaining curves are stable.
	if got, ok := c.Get(ids[1]); !ok || got.ID() != ids[1] {
		t.Error("remaining curve lost its ID")
	}
	if len(c.Curves()) != 2 {
		t.Errorf("len(Curves) = %d, want 2", len(c.Curves()))
	}
}

func TestCollection_Errors(t *testing.T) {
	c, ids := collectionOf(2)
	if err := c.Remove(CurveID(99)); !errors.Is(err, ErrNoCurve) {
		t.Errorf("Remove(99) = %v, want ErrNoCurve", err)
	}
	if err := c.Remove(NoCurve); !errors.Is(err, ErrNoCurve) {
		t.Errorf("Remove(NoCurve) = %v, want ErrNoCurve", err)
	}
	if err := c.SetActive(CurveID(99)); !errors.Is(err, ErrNoCurve) {
		t.Errorf("SetActive(99) = %v, want ErrNoCurve", err)
	}
	if err := c.Join(ids[0], CurveID(99), C0); !errors.Is(err, ErrNoCurve) {
		t.Errorf("Join to missing = %v, want ErrNoCurve", err)
	}
	if err := c.Join(CurveID(99), ids[0], C0); !errors.Is(err, ErrNoCurve) {
		t.Errorf("Join from missing = %v, want ErrNoCurve", err)
	}
}

func TestCollection_Join(t *testing.T) {
	c, ids := collectionOf(2)
	if err := c.Join(ids[0], ids[1], C1); err != nil {
		t.Fatal(err)
	}
	a, _ := c.Get(ids[0])
	b, _ := c.Get(ids[1])
	end, _ := a.ControlPoint(1)
	start, _ := b.ControlPoint(0)
	if start != end {
		t.Errorf("b[0] = %v, want %v", start, end)
	}
}
