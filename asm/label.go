package asm

// LabelTable maps label names to instruction indexes.
type LabelTable map[string]int

// ResolveLabels assigns each label the index of the instruction on its line,
// or of the next instruction when the line has none. A redefined label takes
// its last definition.
func ResolveLabels(lines []string) (labels LabelTable) {
	labels = make(LabelTable, 16)

	index := 0
	for _, raw := range lines {
		ln := Preprocess(raw)
		if len(ln.Label) != 0 {
			labels[ln.Label] = index
		}
		if !ln.Empty() {
			index++
		}
	}

	return
}
