package vec

// Lane counts.
const (
	Width4 = 4
	Width8 = 8
)
