package lookup

import (
	"testing"

	"github.com/heartmarshall/wordlookup/internal/provider"
)

func def(text string) provider.Definition { return provider.Definition{Definition: text} }

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entries   []provider.Entry
		wantOK    bool
		wantDef   string
		wantAudio string // empty means nil
	}{
		{
			name:    "nil entries",
			entries: nil,
		},
		{
			name:    "empty entries",
			entries: []provider.Entry{},
		},
		{
			name:    "first entry without meanings",
			entries: []provider.Entry{{Word: "rare"}},
		},
		{
			name: "first meaning without definitions",
			entries: []provider.Entry{{
				Meanings: []provider.Meaning{
					{PartOfSpeech: "noun"},
					{PartOfSpeech: "verb", Definitions: []provider.Definition{def("not reached")}},
				},
			}},
		},
		{
			name: "empty definition text",
			entries: []provider.Entry{{
				Meanings: []provider.Meaning{{Definitions: []provider.Definition{def(""), def("second")}}},
			}},
		},
		{
			name: "later entries are ignored when the first has nothing",
			entries: []provider.Entry{
				{Word: "x"},
				{Word: "x", Meanings: []provider.Meaning{{Definitions: []provider.Definition{def("from second entry")}}}},
			},
		},
		{
			name: "first definition without audio",
			entries: []provider.Entry{{
				Phonetics: []provider.Phonetic{{Text: "/kæt/"}},
				Meanings:  []provider.Meaning{{Definitions: []provider.Definition{def("a small feline"), def("other")}}},
			}},
			wantOK:  true,
			wantDef: "a small feline",
		},
		{
			name: "first non-empty audio wins",
			entries: []provider.Entry{{
				Phonetics: []provider.Phonetic{
					{Audio: ""},
					{Audio: "https://x/hello.mp3"},
					{Audio: "https://x/hello-uk.mp3"},
				},
				Meanings: []provider.Meaning{{Definitions: []provider.Definition{def("used as a greeting")}}},
			}},
			wantOK:    true,
			wantDef:   "used as a greeting",
			wantAudio: "https://x/hello.mp3",
		},
		{
			name: "audio from a later entry is not used",
			entries: []provider.Entry{
				{Meanings: []provider.Meaning{{Definitions: []provider.Definition{def("first")}}}},
				{Phonetics: []provider.Phonetic{{Audio: "https://x/second.mp3"}}},
			},
			wantOK:  true,
			wantDef: "first",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := extract(tt.entries)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.DefinitionText != tt.wantDef {
				t.Errorf("DefinitionText = %q, want %q", got.DefinitionText, tt.wantDef)
			}
			switch {
			case tt.wantAudio == "" && got.AudioURL != nil:
				t.Errorf("AudioURL = %q, want nil", *got.AudioURL)
			case tt.wantAudio != "" && got.AudioURL == nil:
				t.Errorf("AudioURL = nil, want %q", tt.wantAudio)
			case tt.wantAudio != "" && *got.AudioURL != tt.wantAudio:
				t.Errorf("AudioURL = %q, want %q", *got.AudioURL, tt.wantAudio)
			}
		})
	}
}
