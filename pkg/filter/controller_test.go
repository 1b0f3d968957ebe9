package filter

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleItems() []Item {
	return []Item{
		{ID: "BLOCKER", Text: "Blocker"},
		{ID: "CRITICAL", Text: "Critical"},
		{ID: "MAJOR", Text: "Major"},
	}
}

func TestController_MoveToSelectionPreservesOrder(t *testing.T) {
	c := NewStatic(sampleItems())

	if !c.MoveToSelection("MAJOR") {
		t.Fatalf("expected MAJOR to move")
	}
	if !c.MoveToSelection("BLOCKER") {
		t.Fatalf("expected BLOCKER to move")
	}

	if diff := cmp.Diff([]string{"MAJOR", "BLOCKER"}, c.CurrentValue()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"CRITICAL"}, c.choices.IDs()); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	sel := c.Selection()
	if sel[0].Index >= sel[1].Index {
		t.Fatalf("expected ascending selection index, got %#v", sel)
	}
}

func TestController_UnknownIDsAreIgnored(t *testing.T) {
	c := NewStatic(sampleItems())
	calls := 0
	c.OnChange(func([]string) { calls++ })

	if c.MoveToSelection("nope") {
		t.Fatalf("expected unknown id to be ignored")
	}
	if c.MoveToChoices("BLOCKER") {
		t.Fatalf("expected unselected id to be ignored by MoveToChoices")
	}
	if calls != 0 {
		t.Fatalf("expected no notifications, got %d", calls)
	}
	if c.choices.Len() != 3 || c.selection.Len() != 0 {
		t.Fatalf("sets mutated: choices=%v selection=%v", c.choices.IDs(), c.selection.IDs())
	}
}

func TestController_MoveToChoicesAppends(t *testing.T) {
	c := NewStatic(sampleItems())
	c.MoveToSelection("BLOCKER")
	c.MoveToChoices("BLOCKER")

	if diff := cmp.Diff([]string{"CRITICAL", "MAJOR", "BLOCKER"}, c.choices.IDs()); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if len(c.CurrentValue()) != 0 {
		t.Fatalf("expected empty value, got %v", c.CurrentValue())
	}
}

func TestController_MoveToChoicesRestoresSeedIndex(t *testing.T) {
	c := NewStatic(sampleItems())
	c.MoveToSelection("CRITICAL")
	c.MoveToSelection("MAJOR")
	c.MoveToChoices("MAJOR")
	c.MoveToChoices("CRITICAL")

	got := map[string]int{}
	for _, item := range c.Choices() {
		got[item.ID] = item.Index
	}
	want := map[string]int{"BLOCKER": 0, "CRITICAL": 1, "MAJOR": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("choice index mismatch (-want +got):\n%s", diff)
	}

	remote := NewRemote()
	remote.ResetChoicesTo([]Item{{ID: "1", Text: "Alice"}})
	remote.MoveToSelection("1")
	remote.MoveToChoices("1")
	if idx := remote.Choices()[0].Index; idx != 0 {
		t.Fatalf("expected remote choice index 0, got %d", idx)
	}
}

func TestController_NotifiesValue(t *testing.T) {
	c := NewRemote()
	c.ResetChoicesTo([]Item{{ID: "1", Text: "Alice"}, {ID: "2", Text: "Bob"}})

	var got [][]string
	c.OnChange(func(v []string) { got = append(got, v) })

	c.Toggle("1", ListSelection)
	c.Toggle("2", ListSelection)
	c.Toggle("1", ListChoices)

	want := [][]string{{"1"}, {"1", "2"}, {"2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestController_IsDefault(t *testing.T) {
	static := NewStatic(sampleItems())
	if !static.IsDefault() {
		t.Fatalf("expected default before selection")
	}
	static.MoveToSelection("BLOCKER")
	if static.IsDefault() {
		t.Fatalf("expected non-default after selection")
	}
	static.MoveToSelection("CRITICAL")
	static.MoveToSelection("MAJOR")
	if !static.IsDefault() {
		t.Fatalf("expected static filter with no choices left to be default")
	}

	remote := NewRemote()
	remote.ResetChoicesTo([]Item{{ID: "1", Text: "Alice"}})
	remote.MoveToSelection("1")
	if remote.IsDefault() {
		t.Fatalf("expected remote filter with empty choices but a selection to be non-default")
	}
}

func TestController_IsDefaultIgnoresNarrowedChoices(t *testing.T) {
	c := NewStatic(sampleItems())
	c.MoveToSelection("BLOCKER")
	c.ResetChoicesTo(nil)

	if c.IsDefault() {
		t.Fatalf("expected partial selection to stay non-default after choices were narrowed")
	}
	if got := c.RenderSummary(); got != "Blocker" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestController_RenderSummary(t *testing.T) {
	c := NewStatic(sampleItems())
	if got := c.RenderSummary(); got != DefaultSummary {
		t.Fatalf("expected %q, got %q", DefaultSummary, got)
	}
	c.MoveToSelection("CRITICAL")
	c.MoveToSelection("BLOCKER")
	if got := c.RenderSummary(); got != "Critical, Blocker" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestController_ResetExcludesSelection(t *testing.T) {
	c := NewRemote()
	c.ResetChoicesTo([]Item{{ID: "1", Text: "Alice"}})
	c.MoveToSelection("1")

	c.ResetChoicesTo([]Item{{ID: "1", Text: "Alice"}, {ID: "2", Text: "Bob"}, {ID: "2", Text: "Bob again"}})
	if diff := cmp.Diff([]string{"2"}, c.choices.IDs()); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}

	added := c.AppendChoices([]Item{{ID: "1"}, {ID: "2"}, {ID: "3", Text: "Carol"}})
	if added != 1 {
		t.Fatalf("expected 1 appended item, got %d", added)
	}
	if diff := cmp.Diff([]string{"2", "3"}, c.choices.IDs()); diff != "" {
		t.Fatalf("choices mismatch after append (-want +got):\n%s", diff)
	}
}

func TestController_Restore(t *testing.T) {
	c := NewStatic(sampleItems())
	calls := 0
	c.OnChange(func([]string) { calls++ })

	c.Restore([]Item{{ID: "MAJOR"}, {ID: "external", Text: "External"}})

	if diff := cmp.Diff([]string{"MAJOR", "external"}, c.CurrentValue()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if c.choices.Contains("MAJOR") {
		t.Fatalf("restored item still listed as a choice")
	}
	if got := c.RenderSummary(); got != "Major, External" {
		t.Fatalf("unexpected summary %q", got)
	}
	if calls != 0 {
		t.Fatalf("restore should not notify, got %d calls", calls)
	}

	c.MoveToSelection("BLOCKER")
	sel := c.Selection()
	if sel[len(sel)-1].ID != "BLOCKER" {
		t.Fatalf("expected new selection to sort after restored items: %#v", sel)
	}
}

func TestController_SetsStayDisjoint(t *testing.T) {
	items := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		items = append(items, Item{ID: id, Text: id})
	}
	c := NewStatic(items)
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 500; step++ {
		id := items[rng.Intn(len(items))].ID
		if rng.Intn(2) == 0 {
			c.MoveToSelection(id)
		} else {
			c.MoveToChoices(id)
		}
		for _, sel := range c.selection.IDs() {
			if c.choices.Contains(sel) {
				t.Fatalf("step %d: %q present in both sets", step, sel)
			}
		}
		if c.choices.Len()+c.selection.Len() != len(items) {
			t.Fatalf("step %d: lost items: choices=%d selection=%d", step, c.choices.Len(), c.selection.Len())
		}
	}
}
