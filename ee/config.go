package ee

// Config bundles every tunable of the EE estimator. Defaults mirror
// estimconfigparser.h's DEFAULT_* constants; MinThetaMean and
// ThetaSDThreshold promote the two values that were hard-coded constants
// in the original implementation (0.1 and 1e-10) to configuration
// fields, resolving spec.md §9's Open Question about them.
type Config struct {
	ACA_S  float64
	ACA_EE float64
	CompC  float64

	MinThetaMean     float64
	ThetaSDThreshold float64

	SamplerM uint
	M1Steps  uint
	Mouter   uint
	Minner   uint

	OutputAllSteps bool
	UseBorisenko   bool
	LearningRate   float64
	MinTheta       float64
}

// DefaultConfig returns the original implementation's default tunables.
func DefaultConfig() Config {
	return Config{
		ACA_S:            0.1,
		ACA_EE:           0.001,
		CompC:            1e-2,
		MinThetaMean:     0.1,
		ThetaSDThreshold: 1e-10,
		SamplerM:         1000,
		M1Steps:          100,
		Mouter:           100,
		Minner:           10,
		LearningRate:     0.01,
		MinTheta:         0.1,
	}
}
