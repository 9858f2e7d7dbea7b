package feedback

import (
	"reflect"
	"testing"
)

func TestOrderedSet(t *testing.T) {
	t.Parallel()

	set := newOrderedSet()
	for _, v := range []string{"b", "a", "b", "c", "a"} {
		set.Add(v)
	}

	if set.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", set.Len())
	}
	if got := set.Items(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("unexpected order: %v", got)
	}

	if set.Add("a") {
		t.Fatalf("expected duplicate insert to be rejected")
	}
	if !set.Add("d") {
		t.Fatalf("expected new value to be inserted")
	}

	items := set.Items()
	items[0] = "mutated"
	if set.Items()[0] != "b" {
		t.Fatalf("Items must return a copy")
	}
}

func TestOrderedSetEmpty(t *testing.T) {
	t.Parallel()

	set := newOrderedSet()
	if set.Len() != 0 {
		t.Fatalf("expected empty set")
	}
	if got := set.Items(); len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
}
