package lookup

import "github.com/heartmarshall/wordlookup/internal/provider"

// extract picks the first definition of the first meaning of the first entry.
// ok is false when that chain is missing at any level or the definition is empty.
func extract(entries []provider.Entry) (res Result, ok bool) {
	if len(entries) == 0 {
		return Result{}, false
	}
	first := entries[0]
	if len(first.Meanings) == 0 || len(first.Meanings[0].Definitions) == 0 {
		return Result{}, false
	}
	def := first.Meanings[0].Definitions[0].Definition
	if def == "" {
		return Result{}, false
	}

	return Result{
		DefinitionText: def,
		AudioURL:       firstAudio(first.Phonetics),
	}, true
}

// firstAudio returns the first non-empty audio URL in list order, or nil.
func firstAudio(phonetics []provider.Phonetic) *string {
	for _, ph := range phonetics {
		if ph.Audio != "" {
			a := ph.Audio
			return &a
		}
	}
	return nil
}
