package project

import (
	"math"
	"strconv"
)

// SentinelTag marks a type tag that could not be converted to a number. It is
// outside the range of valid Hopscotch block types and is written back as-is
// on save.
const SentinelTag = -1

// NoTriggerTag is written as the trigger type of a rule that has no event.
// It is distinct from SentinelTag.
const NoTriggerTag = 0

// BlockType identifies what a block does.
//
// The set of variants is closed; see [MatchType].
type BlockType interface {
	isBlockType()
}

// ArbitraryID is a block type known only by its numeric wire tag.
type ArbitraryID struct {
	ID float64
}

func (ArbitraryID) isBlockType() {}

// MatchType dispatches t to the handler for its variant. A nil or unknown t
// is treated as ArbitraryID{SentinelTag}.
func MatchType[R any](t BlockType, arbitrary func(ArbitraryID) R) R {
	switch v := t.(type) {
	case ArbitraryID:
		return arbitrary(v)
	case *ArbitraryID:
		if v != nil {
			return arbitrary(*v)
		}
	}
	return arbitrary(ArbitraryID{ID: SentinelTag})
}

// Block is the smallest executable unit.
type Block struct {
	Type BlockType
}

// NewBlock returns a block carrying the numeric type tag.
func NewBlock(tag float64) Block {
	return Block{Type: ArbitraryID{ID: tag}}
}

// Tag returns the numeric wire tag of the block type.
func (b Block) Tag() float64 {
	return MatchType(b.Type, func(a ArbitraryID) float64 { return a.ID })
}

// IsSentinel reports whether the block carries the unresolvable tag.
func (b Block) IsSentinel() bool { return b.Tag() == SentinelTag }

// String formats the tag without a trailing ".0" for whole numbers.
func (b Block) String() string {
	return FormatTag(b.Tag())
}

// FormatTag formats a numeric tag the way it appears in a document.
func FormatTag(tag float64) string {
	if math.IsNaN(tag) || math.IsInf(tag, 0) {
		return strconv.Itoa(SentinelTag)
	}
	return strconv.FormatFloat(tag, 'f', -1, 64)
}
