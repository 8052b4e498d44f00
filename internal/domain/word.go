package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wire names of the fields the server understands itself
const (
	FieldID      = "_id"
	FieldWord    = "word"
	FieldMeaning = "meaning"
)

// Word represents a vocabulary entry.
// Any field other than the id, word and meaning is kept in Extra and passed
// through untouched.
type Word struct {
	ID      string
	Word    string
	Meaning string
	Extra   map[string]any
}

// IsValidWordID reports whether id has the identifier syntax used by the stores
func IsValidWordID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// NewWordID returns a fresh identifier
func NewWordID() string {
	return primitive.NewObjectID().Hex()
}

// HasRequiredFields reports whether both word and meaning are present
func (w Word) HasRequiredFields() bool {
	return w.Word != "" && w.Meaning != ""
}

// Fields flattens the word into a single map without its id
func (w Word) Fields() map[string]any {
	fields := make(map[string]any, len(w.Extra)+2)
	for k, v := range w.Extra {
		fields[k] = v
	}
	if w.Word != "" {
		fields[FieldWord] = w.Word
	}
	if w.Meaning != "" {
		fields[FieldMeaning] = w.Meaning
	}
	return fields
}

// WordFromFields builds a Word from a flat field map.
// A word or meaning that is not a non-empty string is kept verbatim in Extra,
// so a replace stores exactly the keys it was given.
func WordFromFields(fields map[string]any) Word {
	var w Word
	for k, v := range fields {
		switch k {
		case FieldID:
			if id, ok := v.(string); ok {
				w.ID = id
				continue
			}
		case FieldWord:
			if s, ok := v.(string); ok && s != "" {
				w.Word = s
				continue
			}
		case FieldMeaning:
			if s, ok := v.(string); ok && s != "" {
				w.Meaning = s
				continue
			}
		}
		if k == FieldID {
			continue
		}
		if w.Extra == nil {
			w.Extra = make(map[string]any)
		}
		w.Extra[k] = v
	}
	return w
}

// MarshalJSON writes the word as one flat object
func (w Word) MarshalJSON() ([]byte, error) {
	fields := w.Fields()
	if w.ID != "" {
		fields[FieldID] = w.ID
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads a flat object into the word
func (w *Word) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*w = WordFromFields(fields)
	return nil
}
