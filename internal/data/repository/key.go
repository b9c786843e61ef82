package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// KeyKind tags how a path identifier is matched against _id.
type KeyKind int

const (
	// KeyObjectID matches a store-generated ObjectID.
	KeyObjectID KeyKind = iota
	// KeyRaw matches the identifier as a literal string.
	KeyRaw
)

func (k KeyKind) String() string {
	switch k {
	case KeyObjectID:
		return "object_id"
	case KeyRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// LookupKey is one candidate interpretation of a path identifier.
type LookupKey struct {
	Kind     KeyKind
	ObjectID bson.ObjectID
	Raw      string
}

// Value returns what goes into the _id filter.
func (k LookupKey) Value() any {
	if k.Kind == KeyObjectID {
		return k.ObjectID
	}
	return k.Raw
}

// CacheKey names the record k addresses. Every spelling of one ObjectID
// (upper or lower case hex) maps to the same name, and ObjectIDs never
// collide with raw string keys.
func (k LookupKey) CacheKey() string {
	if k.Kind == KeyObjectID {
		return k.Kind.String() + ":" + k.ObjectID.Hex()
	}
	return k.Kind.String() + ":" + k.Raw
}

// KeyOf returns the key addressing a stored _id value.
func KeyOf(id any) (LookupKey, bool) {
	switch v := id.(type) {
	case bson.ObjectID:
		return LookupKey{Kind: KeyObjectID, ObjectID: v}, true
	case string:
		return LookupKey{Kind: KeyRaw, Raw: v}, true
	default:
		return LookupKey{}, false
	}
}

// ResolveKeys lists the interpretations of id in the order they are tried:
// the typed ObjectID first when id is 24 hex characters, then the raw string.
func ResolveKeys(id string) []LookupKey {
	keys := make([]LookupKey, 0, 2)
	if oid, err := bson.ObjectIDFromHex(id); err == nil {
		keys = append(keys, LookupKey{Kind: KeyObjectID, ObjectID: oid})
	}
	return append(keys, LookupKey{Kind: KeyRaw, Raw: id})
}

// Resolve runs attempt for each key of id until one reports a hit. It returns
// false with a nil error only after every interpretation missed; the first
// error stops the lookup.
func Resolve(id string, attempt func(key LookupKey) (bool, error)) (bool, error) {
	for _, key := range ResolveKeys(id) {
		found, err := attempt(key)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// idFilter matches _id against key, plus any extra constraints.
func idFilter(key LookupKey, extra bson.M) bson.M {
	filter := bson.M{"_id": key.Value()}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}
