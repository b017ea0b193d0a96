package provider

// Entry is one dictionary result object for a word, in the order the upstream
// API returned it. Meanings, definitions and phonetics keep upstream order too.
type Entry struct {
	Word      string
	Phonetics []Phonetic
	Meanings  []Meaning
}

// Phonetic describes a pronunciation variant. Audio is empty when the variant
// carries no recording.
type Phonetic struct {
	Text  string
	Audio string
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Definition string
	Example    string
}
