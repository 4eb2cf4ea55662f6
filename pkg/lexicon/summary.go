package lexicon

// Summary describes a category for display.
type Summary struct {
	Name     string `json:"name" yaml:"name"`
	Size     int    `json:"size" yaml:"size"`
	Longest  string `json:"longest" yaml:"longest"`
	Shortest string `json:"shortest" yaml:"shortest"`
}

// Summarize returns the size and extreme words of c.
func Summarize(c Category) Summary {
	return Summary{
		Name:     c.Name(),
		Size:     c.Len(),
		Longest:  Longest(c),
		Shortest: Shortest(c),
	}
}
