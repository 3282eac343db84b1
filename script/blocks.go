package script

import "strings"

const (
	kwVar          = "VAR"
	kwFor          = "FOR"
	kwEndFor       = "ENDFOR"
	kwIf           = "IF"
	kwElse         = "ELSE"
	kwEndIf        = "ENDIF"
	kwTile         = "TILE"
	kwTileFill     = "TILE_FILL"
	kwEntity       = "ENTITY"
	kwEntityRandom = "ENTITY_RANDOM"
	kwObject       = "OBJECT"
	kwStructure    = "STRUCTURE"
)

func keyword(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// matchBlock finds the line closing the block opened at lines[start],
// looking no further than end. Re-occurrences of open nest.
func matchBlock(lines []string, start, end int, open, close string) (int, bool) {
	depth := 1
	for i := start + 1; i < end && i < len(lines); i++ {
		switch keyword(lines[i]) {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

type ifBlock struct {
	elseIdx int // -1 without an ELSE
	endIdx  int
}

// matchIf is matchBlock for IF/ENDIF that also records the first ELSE at the
// block's own depth.
func matchIf(lines []string, start, end int) (ifBlock, bool) {
	blk := ifBlock{elseIdx: -1, endIdx: -1}
	depth := 1
	for i := start + 1; i < end && i < len(lines); i++ {
		switch keyword(lines[i]) {
		case kwIf:
			depth++
		case kwElse:
			if depth == 1 && blk.elseIdx < 0 {
				blk.elseIdx = i
			}
		case kwEndIf:
			depth--
			if depth == 0 {
				blk.endIdx = i
				return blk, true
			}
		}
	}
	return blk, false
}
