package domain

// RequiredFields lists the top-level keys every receipt must carry, in
// the order reports name them.
var RequiredFields = []string{
	"id",
	"ts",
	"subject",
	"input_hash",
	"output_hash",
	"env",
	"merkle",
	"tsa",
	"transparency",
	"signatures",
}

// Receipt is a decoded receipt document. Key presence is what the
// required-field check inspects; values stay untyped JSON until one of
// the views narrows them.
type Receipt map[string]any

func (r Receipt) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Transparency returns the typed view of the transparency block. The
// view is empty when the block is absent or not a mapping.
func (r Receipt) Transparency() Transparency {
	block, _ := r["transparency"].(map[string]any)
	return Transparency{block: block}
}

// Signatures returns the signature entries in document order. Elements
// that are not mappings become empty entries so indexes stay aligned
// with the document.
func (r Receipt) Signatures() []Signature {
	list, _ := r["signatures"].([]any)
	entries := make([]Signature, 0, len(list))
	for _, item := range list {
		entry, _ := item.(map[string]any)
		entries = append(entries, Signature{entry: entry})
	}
	return entries
}

// Transparency is the optional transparency-log block of a receipt.
type Transparency struct {
	block map[string]any
}

// Endpoint resolves the log endpoint the receipt advertises: rekor_url
// when it holds a usable value, otherwise the first mirror URL. ok is
// false when the block offers no candidate. A usable non-string
// rekor_url is still the candidate; filtering non-strings is the
// caller's job.
func (t Transparency) Endpoint() (any, bool) {
	if value, ok := t.block["rekor_url"]; ok && usable(value) {
		return value, true
	}
	mirrors, ok := t.block["mirror_urls"].([]any)
	if !ok || len(mirrors) == 0 {
		return nil, false
	}
	return mirrors[0], true
}

// Signature is one entry of a receipt's signatures sequence.
type Signature struct {
	entry map[string]any
}

// Signer returns the key identity recorded on the entry. A missing
// signer defaults to the empty string; ok is false only when the field
// holds a non-string value.
func (s Signature) Signer() (string, bool) {
	raw, present := s.entry["signer"]
	if !present {
		return "", true
	}
	value, isString := raw.(string)
	return value, isString
}

// usable reports whether a JSON value counts as a candidate endpoint:
// null, false, zero, and empty strings or containers do not, and the
// resolver falls through to the mirror list instead.
func usable(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
