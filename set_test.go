package jpnphoneme

import "testing"

func TestSetInsertAndHas(t *testing.T) {
	s := NewSet[rune]()

	if s.Has('a') {
		t.Error("empty set should not contain any elements")
	}

	s.Insert('a')
	if !s.Has('a') {
		t.Error("set should contain inserted element")
	}
	if s.Has('b') {
		t.Error("set should not contain elements that weren't inserted")
	}
}

func TestSetInsertDedupsDuplicates(t *testing.T) {
	s := NewSet[string]()
	s.Insert("書く")
	s.Insert("書く")
	s.Insert("書く")

	if !s.Has("書く") {
		t.Error("set should contain the repeatedly inserted element")
	}
	if s.Has("食べる") {
		t.Error("set should not contain an element that was never inserted")
	}
}
