package picker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calebmor/varmenu/internal/catalog"
)

func TestLayoutUngroupedFirst(t *testing.T) {
	items := catalog.Flatten(testCatalog(), false)
	display, rows := layoutRows(items)

	gotDisplay := catalog.Addresses(display)
	want := []string{"greeting", "user.first_name", "user.last_name", "account.plan"}
	if diff := cmp.Diff(want, gotDisplay); diff != "" {
		t.Fatalf("display order mismatch (-want +got):\n%s", diff)
	}

	type rowShape struct {
		Header    bool
		Title     string
		Address   string
		ItemIndex int
	}
	gotRows := make([]rowShape, len(rows))
	for i, row := range rows {
		gotRows[i] = rowShape{Header: row.Header, Title: row.Title, Address: row.Item.Address, ItemIndex: row.ItemIndex}
	}
	wantRows := []rowShape{
		{Address: "greeting", ItemIndex: 0},
		{Header: true, Title: "User", ItemIndex: -1},
		{Address: "user.first_name", ItemIndex: 1},
		{Address: "user.last_name", ItemIndex: 2},
		{Header: true, Title: "Account", ItemIndex: -1},
		{Address: "account.plan", ItemIndex: 3},
	}
	if diff := cmp.Diff(wantRows, gotRows); diff != "" {
		t.Fatalf("row layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutGroupsContiguous(t *testing.T) {
	// Parent items interleave group membership: the parent itself belongs to
	// the enclosing scope while its leaves form a fresh group.
	items := catalog.Flatten(testCatalog(), true)
	display, _ := layoutRows(items)

	got := catalog.Addresses(display)
	want := []string{
		"greeting", "user", "account",
		"user.first_name", "user.last_name",
		"account.plan",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutEmpty(t *testing.T) {
	display, rows := layoutRows(nil)
	if len(display) != 0 || len(rows) != 0 {
		t.Fatalf("expected empty layout, got %d display %d rows", len(display), len(rows))
	}
}
