package entity

// FieldID is the primary key field of every stored document.
const FieldID = "_id"

// Document is a schema-less record passed through between HTTP and the store.
type Document map[string]any

// ID returns the stored primary key, or nil when the document has none.
func (d Document) ID() any {
	return d[FieldID]
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithoutID returns a shallow copy with the primary key removed.
func (d Document) WithoutID() Document {
	out := d.Clone()
	delete(out, FieldID)
	return out
}

// HasUsableID reports whether a caller supplied a primary key worth keeping.
// Absent, null and empty-string keys are treated as missing.
func (d Document) HasUsableID() bool {
	switch v := d[FieldID].(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return true
	}
}
