// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"

	"github.com/pdiddy/herb-atlas/internal/listing"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

// Entry is one named item in a category or group page, with the
// supplementary display text the static pages look up by name. Read-only
// navigation data; the core never mutates it.
type Entry struct {
	Name        string     `json:"name"`
	KeyActions  types.Flex `json:"keyActions,omitempty"`
	Explanation types.Flex `json:"explanation,omitempty"`
}

// Subcategory groups entries under a category.
type Subcategory struct {
	Name     string  `json:"name"`
	Herbs    []Entry `json:"herbs,omitempty"`
	Formulas []Entry `json:"formulas,omitempty"`
}

// Category is one node of the herb category tree.
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	Herbs         []Entry       `json:"herbs,omitempty"`
	Formulas      []Entry       `json:"formulas,omitempty"`
}

// CategoryList is the herb category navigation tree. The endpoint serves
// either {"categories": [...]} or a bare array; both decode.
type CategoryList struct {
	Categories []Category
}

// UnmarshalJSON accepts the wrapped and bare-array body shapes.
func (l *CategoryList) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Categories != nil {
		l.Categories = wrapper.Categories
		return nil
	}

	var bare []Category
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	l.Categories = bare
	return nil
}

// Group is one flat herb group.
type Group struct {
	Name  string  `json:"name"`
	Herbs []Entry `json:"herbs,omitempty"`
}

// GroupList is the flat herb-group reference list, tolerant of the same
// two body shapes as CategoryList.
type GroupList struct {
	Groups []Group
}

// UnmarshalJSON accepts {"groups": [...]}, {"categories": [...]}, or a
// bare array.
func (l *GroupList) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Groups     []Group `json:"groups"`
		Categories []Group `json:"categories"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if wrapper.Groups != nil {
			l.Groups = wrapper.Groups
			return nil
		}
		if wrapper.Categories != nil {
			l.Groups = wrapper.Categories
			return nil
		}
	}

	var bare []Group
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	l.Groups = bare
	return nil
}

// Lookup finds the first entry anywhere in the tree whose folded name
// matches. The ok result is false on a miss; misses are not errors.
func (l *CategoryList) Lookup(name string) (Entry, bool) {
	target := listing.FoldName(name)
	for _, cat := range l.Categories {
		if e, ok := lookupEntries(target, cat.Herbs, cat.Formulas); ok {
			return e, true
		}
		for _, sub := range cat.Subcategories {
			if e, ok := lookupEntries(target, sub.Herbs, sub.Formulas); ok {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Lookup finds the first group entry whose folded name matches, ignoring
// parenthetical variant suffixes.
func (l *GroupList) Lookup(name string) (Entry, bool) {
	target := listing.FoldGroupName(name)
	for _, group := range l.Groups {
		for _, e := range group.Herbs {
			if listing.FoldGroupName(e.Name) == target {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func lookupEntries(target string, lists ...[]Entry) (Entry, bool) {
	for _, entries := range lists {
		for _, e := range entries {
			if listing.FoldName(e.Name) == target {
				return e, true
			}
		}
	}
	return Entry{}, false
}
