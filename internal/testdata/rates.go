package testdata

// Rate is a common sponge rate, expressed as a number of lanes.
type Rate struct {
	Name  string
	Lanes int
}

// Rates are the rates of the standard SHA-3 and SHAKE instances, plus the full state.
var Rates = []Rate{
	{"SHA3-512 (576 bits)", 9},
	{"SHA3-384 (832 bits)", 13},
	{"1024 bits", 16},
	{"SHA3-256 (1088 bits)", 17},
	{"SHA3-224 (1152 bits)", 18},
	{"SHAKE128 (1344 bits)", 21},
	{"full state (1600 bits)", 25},
}
