package folders

import (
	"fmt"
	"strings"
)

// Category is one of the fixed folder names created under Assets/Project.
type Category string

// Supported categories, in the order they are created.
const (
	Scripts   Category = "Scripts"
	Materials Category = "Materials"
	Music     Category = "Music"
	Prefabs   Category = "Prefabs"
	Models    Category = "Models"
	Textures  Category = "Textures"
	Editor    Category = "Editor"
)

// Categories returns every category in canonical order.
func Categories() []Category {
	return []Category{Scripts, Materials, Music, Prefabs, Models, Textures, Editor}
}

// Selection maps each category to whether its folder should be created.
// Missing keys read as disabled.
type Selection map[Category]bool

// All returns a selection with every category enabled.
func All() Selection {
	s := make(Selection, len(Categories()))
	for _, c := range Categories() {
		s[c] = true
	}
	return s
}

// Enabled returns the enabled categories in canonical order.
func (s Selection) Enabled() []Category {
	var out []Category
	for _, c := range Categories() {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown folder category %q (valid: %s)", name, validNames())
}

// ParseSelection builds a selection from category names. An empty list
// selects everything.
func ParseSelection(names []string) (Selection, error) {
	if len(names) == 0 {
		return All(), nil
	}
	s := make(Selection, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		s[c] = true
	}
	return s, nil
}

func validNames() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
