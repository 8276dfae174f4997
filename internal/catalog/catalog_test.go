package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseYAMLPreservesDeclarationOrder(t *testing.T) {
	doc := []byte(`
zeta:
  title: "Zeta"
alpha:
  title: "Alpha"
mike:
  title: "Mike"
`)
	cat, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML returned error: %v", err)
	}
	keys := make([]string, len(cat))
	for i, entry := range cat {
		keys[i] = entry.Key
	}
	want := []string{"zeta", "alpha", "mike"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLNestedChildren(t *testing.T) {
	doc := []byte(`
user:
  title: "User"
  description: "Fields about the user"
  children:
    first_name:
      title: "First Name"
    last_name:
      title: "Last Name"
`)
	cat, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML returned error: %v", err)
	}
	if len(cat) != 1 {
		t.Fatalf("expected 1 root entry, got %d", len(cat))
	}
	user := cat[0].Node
	if user.Title != "User" || user.Description != "Fields about the user" {
		t.Fatalf("unexpected root node: %+v", user)
	}
	if user.Leaf() {
		t.Fatalf("node with children reported as leaf")
	}
	if len(user.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(user.Children))
	}
	if user.Children[0].Key != "first_name" || user.Children[1].Key != "last_name" {
		t.Fatalf("child order lost: %+v", user.Children)
	}
	if !user.Children[0].Node.Leaf() {
		t.Fatalf("childless node should be a leaf")
	}
}

func TestParseYAMLMissingTitle(t *testing.T) {
	doc := []byte(`
user:
  description: "No title here"
`)
	_, err := ParseYAML(doc)
	if err == nil {
		t.Fatalf("expected error for missing title")
	}
	if !strings.Contains(err.Error(), "user") {
		t.Fatalf("error should name the offending entry, got: %v", err)
	}
}

func TestParseYAMLNonMappingRoot(t *testing.T) {
	_, err := ParseYAML([]byte("- just\n- a\n- list\n"))
	if err == nil {
		t.Fatalf("expected error for non-mapping root")
	}
}

func TestParseYAMLToleratesScalarChildren(t *testing.T) {
	doc := []byte(`
user:
  title: "User"
  children: none
`)
	cat, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML returned error: %v", err)
	}
	if !cat[0].Node.Leaf() {
		t.Fatalf("scalar children value should leave the node a leaf")
	}
}

func TestParseYAMLEmptyDocument(t *testing.T) {
	cat, err := ParseYAML([]byte(""))
	if err != nil {
		t.Fatalf("ParseYAML returned error: %v", err)
	}
	if len(cat) != 0 {
		t.Fatalf("expected empty catalog, got %d entries", len(cat))
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := "account:\n  title: \"Account\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cat) != 1 || cat[0].Key != "account" {
		t.Fatalf("unexpected catalog: %+v", cat)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSplitAddress(t *testing.T) {
	if got := SplitAddress("user.address.city"); len(got) != 3 || got[0] != "user" || got[2] != "city" {
		t.Fatalf("unexpected split: %v", got)
	}
	if got := SplitAddress(""); got != nil {
		t.Fatalf("empty address should split to nil, got %v", got)
	}
}
