package cpu

// Vector widths in float32 lanes.
const (
	WidthScalar = 1
	Width4      = 4
	Width8      = 8
)

// EnvWidth names the environment variable that narrows the detected width.
const EnvWidth = "FIRCORR_WIDTH"
