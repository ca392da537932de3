package model

import (
	"strconv"
	"strings"
	"unicode"
)

// naturalKey splits an id like "R1.10" into comparable chunks so that
// "R2" sorts before "R10". Digit runs compare numerically, everything
// else compares as text.
type naturalChunk struct {
	text  string
	num   int
	isNum bool
}

func naturalKey(id string) []naturalChunk {
	var chunks []naturalChunk
	var b strings.Builder
	var digits bool

	flush := func() {
		if b.Len() == 0 {
			return
		}
		s := b.String()
		b.Reset()
		if digits {
			n, _ := strconv.Atoi(s)
			chunks = append(chunks, naturalChunk{num: n, isNum: true})
		} else {
			chunks = append(chunks, naturalChunk{text: s})
		}
	}

	for _, r := range id {
		isDigit := unicode.IsDigit(r)
		if b.Len() > 0 && isDigit != digits {
			flush()
		}
		digits = isDigit
		b.WriteRune(r)
	}
	flush()
	return chunks
}

// naturalLess compares two ids in natural order (R1, R1.1, R2, R10).
func naturalLess(a, b string) bool {
	ka, kb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		ca, cb := ka[i], kb[i]
		switch {
		case ca.isNum && cb.isNum:
			if ca.num != cb.num {
				return ca.num < cb.num
			}
		case !ca.isNum && !cb.isNum:
			if ca.text != cb.text {
				return ca.text < cb.text
			}
		default:
			// Numbers sort before text at the same position.
			return ca.isNum
		}
	}
	return len(ka) < len(kb)
}
