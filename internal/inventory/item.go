package inventory

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
)

// NameTag and TierTag are the tag keys the classifier reads.
const (
	NameTag = "Name"
	TierTag = "Tier"
)

// Item is one raw record returned by a describe call. It is immutable and
// lives only for the request that fetched it.
type Item struct {
	Kind Kind
	ID   string
	Tags map[string]string
	raw  gjson.Result
}

// ParseItem builds an Item from a single JSON record.
func ParseItem(kind Kind, record string) Item {
	return newItem(kind, gjson.Parse(record))
}

func newItem(kind Kind, raw gjson.Result) Item {
	tags := make(map[string]string)
	raw.Get("Tags").ForEach(func(_, tag gjson.Result) bool {
		// a repeated key keeps the last value seen
		tags[tag.Get("Key").String()] = tag.Get("Value").String()
		return true
	})
	return Item{
		Kind: kind,
		ID:   raw.Get(kind.idField()).String(),
		Tags: tags,
		raw:  raw,
	}
}

// Get returns the attribute at a gjson path, e.g. "State.Name".
func (it Item) Get(path string) gjson.Result {
	return it.raw.Get(path)
}

// Attr returns the attribute at path as a string, empty when absent.
func (it Item) Attr(path string) string {
	return it.raw.Get(path).String()
}

// Tag returns the value of a tag and whether the key is present at all. A
// present tag may carry an empty value.
func (it Item) Tag(key string) (string, bool) {
	value, ok := it.Tags[key]
	return value, ok
}

// Name returns the Name tag. An empty value counts as unresolved.
func (it Item) Name() (string, bool) {
	name := it.Tags[NameTag]
	return name, name != ""
}

// Raw returns the record's JSON text.
func (it Item) Raw() string {
	return it.raw.Raw
}

// Parse extracts the records of kind from a describe response body.
// An empty body is an empty inventory; a body that is not a JSON object
// yields ErrMalformed.
func Parse(kind Kind, data []byte) ([]Item, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON in %s output", ErrMalformed, kind.Command())
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s output is not an object", ErrMalformed, kind.Command())
	}

	collection := root.Get(kind.collectionKey())
	if collection.Exists() && !collection.IsArray() {
		return nil, fmt.Errorf("%w: %s is not a list", ErrMalformed, kind.collectionKey())
	}

	var items []Item
	for _, rec := range collection.Array() {
		if kind == KindInstance {
			// instances are nested one level down in reservations
			for _, inst := range rec.Get("Instances").Array() {
				items = append(items, newItem(kind, inst))
			}
			continue
		}
		items = append(items, newItem(kind, rec))
	}
	return items, nil
}
