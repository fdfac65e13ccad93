package embedder

// chunk is a contiguous slice of the input tagged with its originating
// offset, so results can be written back into position no matter in which
// order chunks complete.
type chunk struct {
	offset int
	texts  []string
}

// chunks partitions texts into slices of at most size elements. The final
// chunk may be shorter but is always produced. The returned slices alias
// the input; callers must not mutate them.
func chunks(texts []string, size int) []chunk {
	if size < 1 {
		size = 1
	}
	out := make([]chunk, 0, (len(texts)+size-1)/size)
	for offset := 0; offset < len(texts); offset += size {
		end := min(offset+size, len(texts))
		out = append(out, chunk{offset: offset, texts: texts[offset:end]})
	}
	return out
}
