package main

// Default command-line flag values
const (
	defaultTaps       = 64    // Coefficient count
	defaultNum        = 48000 // Outputs per iteration, one second at 48 kHz
	defaultIterations = 20
	defaultPrecision  = 32
	defaultSeed       = 1
)

// Test signal parameters
const (
	testSignalFrequency = 1000.0  // 1 kHz test tone
	testSampleRate      = 48000.0 // Sample rate used to generate the tone
)

// Coefficient design
const (
	cutoffRatio         = 0.2  // Lowpass cutoff as a fraction of the sample rate
	stopbandAttenuation = 80.0 // Kaiser window target in dB
)

// Accuracy reporting
const (
	float32Tolerance = 1e-4
	float64Tolerance = 1e-10
)

// Throughput conversion
const (
	megaSamples = 1e6
)
