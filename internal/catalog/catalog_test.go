package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 6 {
		t.Fatalf("expected 6 built-in characters, got %d", c.Len())
	}

	wantNames := []string{
		"Kain Astralion",
		"Sayuki Mizuki",
		"Marcus Wolfbane",
		"Aria Nexus",
		"Zephyr Starlight",
		"Luna Dreamweaver",
	}
	for i, ch := range c.All() {
		if ch.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, ch.ID)
		}
		if ch.Name != wantNames[i] {
			t.Errorf("position %d: expected name %q, got %q", i, wantNames[i], ch.Name)
		}
	}
}

func TestAllIsStable(t *testing.T) {
	c := Default()
	first := c.All()
	for i := 0; i < 5; i++ {
		if got := c.All(); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d returned a different sequence", i)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	chars := c.All()
	chars[0].Name = "Mutated"

	if got := c.All()[0].Name; got != "Kain Astralion" {
		t.Errorf("catalog was mutated through All(): first name is %q", got)
	}
	if c.Len() != 6 {
		t.Errorf("catalog length changed to %d", c.Len())
	}
}

func TestByID(t *testing.T) {
	c := Default()
	for _, want := range c.All() {
		got, err := c.ByID(want.ID)
		if err != nil {
			t.Fatalf("ByID(%d): %v", want.ID, err)
		}
		if got != want {
			t.Errorf("ByID(%d) = %+v, want %+v", want.ID, got, want)
		}
	}

	sayuki, _ := c.ByID(2)
	if sayuki.Name != "Sayuki Mizuki" || sayuki.Species != "Aquatic Hybrid" {
		t.Errorf("unexpected character 2: %+v", sayuki)
	}
}

func TestByIDMiss(t *testing.T) {
	c := Default()
	highest := 0
	for _, ch := range c.All() {
		highest = max(highest, ch.ID)
	}
	for _, id := range []int{0, -1, highest + 1, 999} {
		_, err := c.ByID(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ByID(%d): expected ErrNotFound, got %v", id, err)
		}
	}
}

func validCharacter(id int) Character {
	return Character{
		ID: id, Name: "Test Hero", Role: "Tester", Profile: "Writes tests.",
		Quote: "I test.", Age: "Adult", Gender: "Female", Species: "Human",
		Ability: "Assertions", Wants: "Green builds", Icon: "*",
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty catalog")
	}

	if _, err := New([]Character{validCharacter(1), validCharacter(1)}); err == nil {
		t.Error("expected error for duplicate ids")
	}

	if _, err := New([]Character{validCharacter(0)}); err == nil {
		t.Error("expected error for non-positive id")
	}

	missing := validCharacter(3)
	missing.Icon = ""
	if _, err := New([]Character{missing}); err == nil {
		t.Error("expected error for missing icon")
	}

	c, err := New([]Character{validCharacter(7), validCharacter(3)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.All()[0].ID; got != 7 {
		t.Errorf("insertion order not preserved: first id %d", got)
	}
	if _, err := c.ByID(7); err != nil {
		t.Errorf("ByID(7): %v", err)
	}
}

func TestLoadWithoutPatternsReturnsDefault(t *testing.T) {
	c, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Error("expected the built-in catalog")
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "heroes", "extra"), 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(dir, "heroes", "b.yaml"), `
- id: 20
  name: Second
  role: Role B
  profile: Profile B
  seriff: Quote B
  age: Teen
  gender: Male
  species: Elf
  ability: Ability B
  wants: Wants B
  icon: "B"
`)
	writeFile(t, filepath.Join(dir, "heroes", "extra", "a.yaml"), `
- id: 10
  name: First
  role: Role A
  profile: Profile A
  seriff: Quote A
  age: Adult
  gender: Female
  species: Dwarf
  ability: Ability A
  wants: Wants A
  icon: "A"
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a catalog")

	c, err := Load(dir, []string{"heroes/**/*.yaml"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 characters, got %d", c.Len())
	}
	// heroes/b.yaml sorts before heroes/extra/a.yaml.
	if c.All()[0].Name != "Second" || c.All()[1].Name != "First" {
		t.Errorf("unexpected order: %q, %q", c.All()[0].Name, c.All()[1].Name)
	}
	first, err := c.ByID(10)
	if err != nil {
		t.Fatalf("ByID(10): %v", err)
	}
	if first.Quote != "Quote A" {
		t.Errorf("expected seriff to decode into Quote, got %q", first.Quote)
	}
}

func TestLoadNoMatches(t *testing.T) {
	if _, err := Load(t.TempDir(), []string{"*.yaml"}); err == nil {
		t.Error("expected error when no files match")
	}
}

func TestLoadUnknownField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "- id: 1\n  nickname: oops\n")
	if _, err := Load(dir, []string{"*.yaml"}); err == nil {
		t.Error("expected error for unknown field")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
