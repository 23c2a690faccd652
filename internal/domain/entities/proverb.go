// Package entities contains domain entities used across the application.
package entities

// Proverb represents a single Pashto proverb (matal) together with its
// English translation and contextual meaning. The JSON field names are
// part of the data file contract and must not change.
type Proverb struct {
	Number      int    `json:"-"`           // 1-based position in the collection, assigned at load
	Proverb     string `json:"proverb"`     // the proverb in Pashto script
	Translation string `json:"translation"` // English translation
	Meaning     string `json:"meaning"`     // contextual meaning in English
}
