package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorCyan   = "\033[96m"
	ColorWhite  = "\033[37m"
	ColorDim    = "\033[2m"
)

const (
	RedError     string = ColorRed + "[Error] " + ColorReset
	GreenSuccess string = ColorGreen + "[Success] " + ColorReset
	YellowWarn   string = ColorYellow + "[Warning] " + ColorReset
	CyanInfo     string = ColorCyan + "[Info] " + ColorReset
)
