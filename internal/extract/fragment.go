package extract

import (
	"encoding/json"
	"fmt"
	"regexp"

	"embedscout/internal/media"
	"embedscout/internal/platform"
)

// KeyChain lists alternate keys for the same value, preferred key first.
// Sites that changed their markup over time often carry either name.
type KeyChain []string

// Lookup returns the value of the first key present in blob with a non-empty
// value. Empty strings, empty objects and nulls count as missing.
func (k KeyChain) Lookup(blob map[string]any) (any, bool) {
	for _, key := range k {
		v, ok := blob[key]
		if !ok || isEmpty(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// ParseFragment decodes an embedded JSON payload into a generic object.
func ParseFragment(payload string) (map[string]any, error) {
	var blob map[string]any
	if err := json.Unmarshal([]byte(payload), &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFragment, err)
	}
	if blob == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedFragment)
	}
	return blob, nil
}

// Fragment describes structured data embedded in an attribute of the markup.
// Marker must capture the raw payload in its first group. Keys locates the
// media object inside the payload and URLKey the locator inside that object.
type Fragment struct {
	Marker *regexp.Regexp
	Keys   KeyChain
	URLKey KeyChain
}

// Payloads returns the raw payload of every marker occurrence in text.
func (f Fragment) Payloads(text string) []string {
	return FindAll(text, f.Marker)
}

// Reference parses one payload and reads its locator.
func (f Fragment) Reference(payload string) (media.Reference, error) {
	blob, err := ParseFragment(payload)
	if err != nil {
		return media.Reference{}, err
	}

	obj, ok := f.Keys.Lookup(blob)
	if !ok {
		return media.Reference{}, fmt.Errorf("%w: none of %v present", ErrMalformedFragment, f.Keys)
	}
	inner, ok := obj.(map[string]any)
	if !ok {
		return media.Reference{}, fmt.Errorf("%w: media value is %T", ErrMalformedFragment, obj)
	}

	raw, ok := f.URLKey.Lookup(inner)
	if !ok {
		return media.Reference{}, fmt.Errorf("%w: none of %v present", ErrMalformedFragment, f.URLKey)
	}
	loc, ok := raw.(string)
	if !ok {
		return media.Reference{}, fmt.Errorf("%w: locator is %T", ErrMalformedFragment, raw)
	}

	return media.Reference{URL: loc, Platform: platform.For(loc)}, nil
}

// References returns one reference per well-formed fragment, in text order.
// Malformed fragments are skipped.
func (f Fragment) References(text string) []media.Reference {
	var refs []media.Reference
	for _, payload := range f.Payloads(text) {
		ref, err := f.Reference(payload)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
