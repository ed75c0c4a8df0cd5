package jpnphoneme

import "encoding/binary"

// LoadedTrie is a read-only, query-time view over a serialized artifact. It
// is a thin cursor over the raw bytes rather than a materialized tree, which
// is what lets mmaploader.go hand it bytes obtained from an mmap without
// rebuilding a pointer graph first.
type LoadedTrie struct {
	data     []byte
	rootOff  int
	nPhoneme uint32
	nWords   uint32
}

// Decode parses a byte stream produced by Encode. It validates the header
// (magic, major version, root offset bounds) but does not walk the node
// graph eagerly — individual node records are parsed on demand by
// LookupLongest.
func Decode(data []byte) (*LoadedTrie, error) {
	nPhoneme, nWords, rootOff, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	return &LoadedTrie{data: data, rootOff: int(rootOff), nPhoneme: nPhoneme, nWords: nWords}, nil
}

// NPhoneme and NWords report the header's recorded entry counts.
func (lt *LoadedTrie) NPhoneme() int { return int(lt.nPhoneme) }
func (lt *LoadedTrie) NWords() int   { return int(lt.nWords) }

// LookupLongest mirrors Trie.LookupLongest but walks the serialized byte
// buffer directly, binary-searching each node's sorted children table
// instead of following Go map/pointer edges.
func (lt *LoadedTrie) LookupLongest(text string, start int) (value string, codepoints int, ok bool, err error) {
	curOff := lt.rootOff
	curHdr, err := readNode(lt.data, curOff)
	if err != nil {
		return "", 0, false, err
	}

	var bestValue string
	bestLen := 0
	found := false
	n := 0

	for _, r := range text[start:] {
		childOff, has, err := findChild(lt.data, curHdr, r)
		if err != nil {
			return "", 0, false, err
		}
		if !has {
			break
		}
		childHdr, err := readNode(lt.data, childOff)
		if err != nil {
			return "", 0, false, err
		}
		n++
		if childHdr.hasValue {
			bestValue = childHdr.value
			bestLen = n
			found = true
		}
		curOff = childOff
		curHdr = childHdr
	}
	_ = curOff

	return bestValue, bestLen, found, nil
}

// findChild binary-searches node's children table (sorted ascending by code
// point at write time) for code point r.
func findChild(data []byte, node nodeHeader, r rune) (childOffset int, ok bool, err error) {
	target := uint32(r)
	lo, hi := 0, node.childCount-1
	for lo <= hi {
		mid := (lo + hi) / 2
		entryOff := node.childTableAt + mid*childEntrySize
		cp := uint32(data[entryOff]) | uint32(data[entryOff+1])<<8 | uint32(data[entryOff+2])<<16
		switch {
		case cp == target:
			rel := int32(binary.LittleEndian.Uint32(data[entryOff+3 : entryOff+7]))
			entryEnd := entryOff + childEntrySize
			off := entryEnd + int(rel)
			if off < 0 || off >= len(data) {
				return 0, false, newErr(KindFormat, "child offset %d for U+%04X outside artifact", off, r)
			}
			return off, true, nil
		case cp < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false, nil
}
