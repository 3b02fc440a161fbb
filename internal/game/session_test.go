package game

import (
	"testing"
)

func completedSession(t *testing.T, rounds ...struct {
	cat  Category
	pair OptionPair
}) Session {
	t.Helper()
	s := NewSession(DefaultCategory)
	for _, r := range rounds {
		s = s.SelectCategory(r.cat)
		s = s.BeginGeneration()
		s = s.CompleteGeneration(r.pair)
	}
	return s
}

func round(cat Category, first, second string) struct {
	cat  Category
	pair OptionPair
} {
	return struct {
		cat  Category
		pair OptionPair
	}{cat, OptionPair{first, second}}
}

func TestNewSession(t *testing.T) {
	s := NewSession(CategoryFoodDrink)

	if s.Category != CategoryFoodDrink {
		t.Errorf("Category = %q, want %q", s.Category, CategoryFoodDrink)
	}
	if s.Cursor != -1 {
		t.Errorf("Cursor = %d, want -1", s.Cursor)
	}
	if len(s.History) != 0 {
		t.Errorf("History length = %d, want 0", len(s.History))
	}
	if !s.InitialLoad() {
		t.Error("a new session should report InitialLoad")
	}
	if !s.NeedsGeneration() {
		t.Error("a new session should need generation")
	}
	if s.State() != StateIdle {
		t.Errorf("State = %v, want Idle", s.State())
	}
}

func TestCategories_FixedSet(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(cats))
	}
	seen := map[Category]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if Category("Sports").Valid() {
		t.Error("unknown label should not be valid")
	}
	if !DefaultCategory.Valid() {
		t.Error("default category must be in the fixed set")
	}
}

func TestBeginGeneration(t *testing.T) {
	s := NewSession(DefaultCategory).FailGeneration("old error")
	s = s.BeginGeneration()

	if !s.Loading {
		t.Error("Loading should be true")
	}
	if s.LastError != "" {
		t.Error("BeginGeneration should clear the prior error")
	}
	if s.State() != StateLoading {
		t.Errorf("State = %v, want Loading", s.State())
	}
	if s.NeedsGeneration() {
		t.Error("NeedsGeneration must be false while a call is in flight")
	}
}

func TestCompleteGeneration_InitialLoad(t *testing.T) {
	s := NewSession(CategoryFoodDrink).BeginGeneration()
	s = s.CompleteGeneration(OptionPair{"Pineapple on pizza", "No pineapple on pizza"})

	if s.Loading {
		t.Error("Loading should be false after completion")
	}
	if s.State() != StateIdle {
		t.Errorf("State = %v, want Idle", s.State())
	}
	if s.Pair.First != "Pineapple on pizza" || s.Pair.Second != "No pineapple on pizza" {
		t.Errorf("Pair = %+v", s.Pair)
	}
	if len(s.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(s.History))
	}
	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
	entry := s.History[0]
	if entry.Category != CategoryFoodDrink {
		t.Errorf("entry Category = %q, want %q", entry.Category, CategoryFoodDrink)
	}
	if entry.Pair != s.Pair {
		t.Errorf("entry Pair = %+v, want %+v", entry.Pair, s.Pair)
	}
	if entry.ID == "" {
		t.Error("entry should carry an ID")
	}
	if s.NeedsGeneration() {
		t.Error("a fresh round for the selected category should not need generation")
	}
}

func TestCompleteGeneration_Appends(t *testing.T) {
	s := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryAnimals, "Eagles", "Owls"),
	)

	if len(s.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(s.History))
	}
	if s.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", s.Cursor)
	}
	if s.History[0].Pair.First != "Cats" {
		t.Errorf("first entry = %+v", s.History[0])
	}
}

func TestCompleteGeneration_TruncatesAbandonedBranch(t *testing.T) {
	// Build history of 3, step back to cursor 1, then generate for a new
	// category: entries after the cursor are discarded before the append.
	s := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryAnimals, "Eagles", "Owls"),
		round(CategoryAnimals, "Sharks", "Dolphins"),
	)
	s = s.StepBack() // cursor 1

	s = s.SelectCategory(CategoryTechnology)
	if !s.NeedsGeneration() {
		t.Fatal("category change away from the displayed round should need generation")
	}
	s = s.BeginGeneration()
	s = s.CompleteGeneration(OptionPair{"Tabs", "Spaces"})

	if len(s.History) != 3 {
		t.Fatalf("History length = %d, want 3 (2 kept + 1 appended)", len(s.History))
	}
	if s.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", s.Cursor)
	}
	if s.History[2].Category != CategoryTechnology {
		t.Errorf("appended entry category = %q", s.History[2].Category)
	}
	if s.History[1].Pair.First != "Eagles" {
		t.Errorf("kept entry = %+v", s.History[1])
	}
}

func TestCompleteGeneration_TruncateFromEnd(t *testing.T) {
	// From cursor 2 with history length 3, a category change keeps indices
	// 0-2 and appends, giving length 4 with cursor 3.
	s := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryAnimals, "Eagles", "Owls"),
		round(CategoryAnimals, "Sharks", "Dolphins"),
	)

	s = s.SelectCategory(CategoryFoodDrink).BeginGeneration()
	s = s.CompleteGeneration(OptionPair{"Coffee", "Tea"})

	if len(s.History) != 4 {
		t.Fatalf("History length = %d, want 4", len(s.History))
	}
	if s.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", s.Cursor)
	}
}

func TestCompleteGeneration_DoesNotMutateReceiver(t *testing.T) {
	base := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryAnimals, "Eagles", "Owls"),
	)
	back := base.StepBack()

	_ = back.SelectCategory(CategoryTechnology).BeginGeneration().
		CompleteGeneration(OptionPair{"Tabs", "Spaces"})

	// The original session's history must be untouched by the branch.
	if len(base.History) != 2 {
		t.Fatalf("base history length = %d, want 2", len(base.History))
	}
	if base.History[1].Pair.First != "Eagles" {
		t.Errorf("base history mutated: %+v", base.History[1])
	}
}

func TestCompleteGeneration_EmptyPairIsFailure(t *testing.T) {
	s := NewSession(DefaultCategory).BeginGeneration()
	s = s.CompleteGeneration(OptionPair{})

	if s.State() != StateErrored {
		t.Errorf("State = %v, want Errored", s.State())
	}
	if len(s.History) != 0 {
		t.Error("an empty pair must not grow history")
	}
}

func TestCompleteGeneration_LabelsWithRequestedCategory(t *testing.T) {
	// The category can change while a call is in flight. The result is still
	// recorded under the category it was generated for, so the mismatch with
	// the new selection stays visible.
	s := NewSession(CategoryEverydayLife).BeginGeneration()
	s = s.SelectCategory(CategoryTechnology)
	s = s.CompleteGeneration(OptionPair{"Flip phones", "Rotary phones"})

	if got := s.History[0].Category; got != CategoryEverydayLife {
		t.Errorf("entry Category = %q, want the category at request time", got)
	}
	if s.Category != CategoryTechnology {
		t.Errorf("Category = %q, want the mid-flight selection kept", s.Category)
	}
	if !s.NeedsGeneration() {
		t.Error("the recorded round does not match the selection, so generation is still needed")
	}
	if s.InFlight != "" {
		t.Errorf("InFlight = %q, want cleared after completion", s.InFlight)
	}
}

func TestFailGeneration(t *testing.T) {
	s := completedSession(t, round(CategoryAnimals, "Cats", "Dogs"))
	before := s

	s = s.BeginGeneration()
	s = s.FailGeneration("network error: dial timeout")

	if s.State() != StateErrored {
		t.Errorf("State = %v, want Errored", s.State())
	}
	if !s.Pair.Empty() {
		t.Error("a failure must clear the displayed pair, not leave it stale")
	}
	if s.LastError == "" {
		t.Error("LastError should be set")
	}
	if len(s.History) != len(before.History) || s.Cursor != before.Cursor {
		t.Error("a failure must leave history and cursor unchanged")
	}
}

func TestFailGeneration_Idempotent(t *testing.T) {
	s := completedSession(t, round(CategoryAnimals, "Cats", "Dogs"))

	once := s.BeginGeneration().FailGeneration("boom")
	twice := once.BeginGeneration().FailGeneration("boom")

	if len(once.History) != len(twice.History) || once.Cursor != twice.Cursor {
		t.Error("two consecutive failures must leave history and cursor identical")
	}
	if len(twice.History) != 1 || twice.Cursor != 0 {
		t.Errorf("history/cursor drifted: len=%d cursor=%d", len(twice.History), twice.Cursor)
	}
}

func TestStepBack(t *testing.T) {
	s := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryFoodDrink, "Coffee", "Tea"),
	)

	if !s.CanStepBack() {
		t.Fatal("CanStepBack should be true with cursor > 0")
	}
	s = s.StepBack()

	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
	if s.Pair.First != "Cats" {
		t.Errorf("Pair = %+v, want replayed entry", s.Pair)
	}
	if s.Category != CategoryAnimals {
		t.Errorf("Category = %q, want replayed entry's category", s.Category)
	}
	if len(s.History) != 2 {
		t.Error("StepBack must not mutate history")
	}
	// Replaying an older round means pair and category agree again.
	if s.NeedsGeneration() {
		t.Error("a replayed round should not need generation")
	}
}

func TestStepBack_NoOpAtStart(t *testing.T) {
	s := completedSession(t, round(CategoryAnimals, "Cats", "Dogs"))
	before := s

	s = s.StepBack()
	if s.Cursor != before.Cursor || s.Pair != before.Pair {
		t.Error("StepBack at cursor 0 must be a no-op")
	}

	empty := NewSession(DefaultCategory)
	if empty.CanStepBack() {
		t.Error("CanStepBack must be false with no history")
	}
}

func TestStepBack_DisabledWhileLoading(t *testing.T) {
	s := completedSession(t,
		round(CategoryAnimals, "Cats", "Dogs"),
		round(CategoryAnimals, "Eagles", "Owls"),
	)
	s = s.BeginGeneration()

	if s.CanStepBack() {
		t.Error("CanStepBack must be false while a call is in flight")
	}
	if got := s.StepBack(); got.Cursor != s.Cursor {
		t.Error("StepBack while loading must be a no-op")
	}
}

func TestSelectCategory_SameCategoryNoRegeneration(t *testing.T) {
	s := completedSession(t, round(CategoryAnimals, "Cats", "Dogs"))

	s = s.SelectCategory(CategoryAnimals)
	if s.NeedsGeneration() {
		t.Error("re-selecting the displayed round's category must not trigger generation")
	}
}

func TestSelectCategory_DifferentCategoryNeedsGeneration(t *testing.T) {
	s := completedSession(t, round(CategoryAnimals, "Cats", "Dogs"))

	s = s.SelectCategory(CategoryPopCulture)
	if !s.NeedsGeneration() {
		t.Error("selecting a different category must require regeneration")
	}
	if len(s.History) != 1 {
		t.Error("selection alone must not touch history")
	}
}

func TestCurrent(t *testing.T) {
	s := NewSession(DefaultCategory)
	if _, ok := s.Current(); ok {
		t.Error("Current should report false before any round")
	}

	s = s.BeginGeneration().CompleteGeneration(OptionPair{"A", "B"})
	entry, ok := s.Current()
	if !ok || entry.Pair.First != "A" {
		t.Errorf("Current() = %+v, %v", entry, ok)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "Idle"},
		{StateLoading, "Loading"},
		{StateErrored, "Errored"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
