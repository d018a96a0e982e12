package config

const (
	defaultDetector           = DetectorUppercase
	defaultPrefaceSpeaker     = "PREFACE_TEXT"
	defaultMinWords           = 74
	defaultNGramSize          = 2
	defaultCandidateThreshold = 0.1
	defaultChangedLineCutoff  = 0.6
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Speaker-detection strategy names accepted by analysis.detector.
const (
	DetectorUppercase = "uppercase"
	DetectorColon     = "colon"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Detector:           defaultDetector,
			PrefaceSpeaker:     defaultPrefaceSpeaker,
			MinWords:           defaultMinWords,
			NGramSize:          defaultNGramSize,
			CandidateThreshold: defaultCandidateThreshold,
		},
		Diff: Diff{
			ChangedLineCutoff: defaultChangedLineCutoff,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
