package main

import (
	"sort"
	"strings"

	fyne "fyne.io/fyne/v2"
)

// All persisted keys live under this prefix so a reset can stay scoped to
// this application's data.
const prefPrefix = "viscobat."

// langPrefKey survives a reset; keyIndexKey tracks every live field key
// (newline-joined) so reset can enumerate what Fyne preferences cannot.
const (
	langPrefKey  = prefPrefix + "lang"
	tabPrefKey   = prefPrefix + "selectedTabIndex"
	keyIndexKey  = prefPrefix + "fieldKeyIndex"
	indexKeysSep = "\n"
)

// prefsStore adapts fyne.Preferences to the flat string store the row
// tables and the persisted entries write through. A key counts as present
// only when it is in the index, since preferences cannot distinguish "unset"
// from "empty string".
type prefsStore struct {
	prefs fyne.Preferences
	index map[string]struct{}
}

func newPrefsStore(prefs fyne.Preferences) *prefsStore {
	s := &prefsStore{prefs: prefs, index: map[string]struct{}{}}
	raw := prefs.StringWithFallback(keyIndexKey, "")
	for _, k := range strings.Split(raw, indexKeysSep) {
		if k != "" {
			s.index[k] = struct{}{}
		}
	}
	return s
}

func (s *prefsStore) Get(key string) (string, bool) {
	if _, ok := s.index[key]; !ok {
		return "", false
	}
	return s.prefs.StringWithFallback(prefPrefix+key, ""), true
}

func (s *prefsStore) Set(key, value string) {
	s.prefs.SetString(prefPrefix+key, value)
	if _, ok := s.index[key]; !ok {
		s.index[key] = struct{}{}
		s.persistIndex()
	}
}

func (s *prefsStore) Delete(key string) {
	if _, ok := s.index[key]; !ok {
		return
	}
	s.prefs.RemoveValue(prefPrefix + key)
	delete(s.index, key)
	s.persistIndex()
}

// Reset removes every indexed field key. The language preference lives
// outside the index and survives; callers rebuild the UI afterwards.
func (s *prefsStore) Reset() {
	for k := range s.index {
		s.prefs.RemoveValue(prefPrefix + k)
	}
	s.index = map[string]struct{}{}
	s.persistIndex()
}

func (s *prefsStore) persistIndex() {
	keys := make([]string, 0, len(s.index))
	for k := range s.index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.prefs.SetString(keyIndexKey, strings.Join(keys, indexKeysSep))
}
