// internal/app/store/whitelist/whiteliststore_test.go
package whiteliststore

import (
	"testing"

	"github.com/uovhub/campusevents/internal/app/system/indexes"
	"github.com/uovhub/campusevents/internal/testutil"
)

func TestIsWhitelistedNormalizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.AddBatch(ctx, []string{"2021/ICT/045"}); err != nil {
		t.Fatalf("AddBatch: %v", err)
	}

	// Every spelling that normalizes to the stored value must hit.
	for _, input := range []string{
		"2021/ICT/045",
		"  2021/ICT/045  ",
		"2021/ict/045",
		"\t2021/Ict/045\n",
	} {
		ok, err := store.IsWhitelisted(ctx, input)
		if err != nil {
			t.Fatalf("IsWhitelisted(%q): %v", input, err)
		}
		if !ok {
			t.Errorf("IsWhitelisted(%q) = false, want true", input)
		}
	}
}

func TestIsWhitelistedExactMatchOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.AddBatch(ctx, []string{"2021/ICT/045"}); err != nil {
		t.Fatalf("AddBatch: %v", err)
	}

	for _, input := range []string{
		"2021/ICT/04",   // prefix
		"2021/ICT/0455", // superstring
		"2021/ICT/046",  // neighbor
		"2021 ICT 045",  // different separator
		"",
		"   ",
	} {
		ok, err := store.IsWhitelisted(ctx, input)
		if err != nil {
			t.Fatalf("IsWhitelisted(%q): %v", input, err)
		}
		if ok {
			t.Errorf("IsWhitelisted(%q) = true, want false", input)
		}
	}
}

func TestAddBatchSkipsDuplicatesAndBlanks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique index enforces the dup skip; create it as startup does.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	n, err := store.AddBatch(ctx, []string{"2021/ICT/001", "2021/ict/001", "", "  ", "2021/ICT/002"})
	if err != nil {
		t.Fatalf("AddBatch: %v", err)
	}
	if n != 2 {
		t.Fatalf("AddBatch inserted %d, want 2", n)
	}

	// Second run inserts nothing.
	n, err = store.AddBatch(ctx, []string{"2021/ICT/001", "2021/ICT/002"})
	if err != nil {
		t.Fatalf("AddBatch rerun: %v", err)
	}
	if n != 0 {
		t.Fatalf("AddBatch rerun inserted %d, want 0", n)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Fatalf("Count = %d, want 2", count)
	}
}
