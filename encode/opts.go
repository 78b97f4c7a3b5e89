package encode

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Compact suppresses all newlines and indentation.
func Compact() EncodeOption {
	return func(es *EncState) { es.compact = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
