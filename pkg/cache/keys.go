package cache

// KeyVersion is mixed into every key. Bump it when the serialized output
// format changes so old entries stop matching.
const KeyVersion = 1

// OutputKeyOpts are the output options that change the serialized bytes.
type OutputKeyOpts struct {
	Indent string `json:"indent"`
}

// Keyer derives cache keys.
type Keyer interface {
	// OutputKey identifies the rewritten document produced from an input
	// document and a rule set.
	OutputKey(inputHash, rulesHash string, opts OutputKeyOpts) string
}

// DefaultKeyer produces keys of the form "output:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// OutputKey implements Keyer.
func (DefaultKeyer) OutputKey(inputHash, rulesHash string, opts OutputKeyOpts) string {
	return hashKey("output", KeyVersion, inputHash, rulesHash, opts)
}

var _ Keyer = DefaultKeyer{}
