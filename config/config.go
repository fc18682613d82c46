package config

// AttrParam names a single-attribute change statistic (e.g. "Sender" on
// attribute "gender").
type AttrParam struct {
	FuncName string
	AttrName string
}

// DyadicParam names a dyadic-covariate change statistic reading two
// continuous attribute columns (e.g. "GeoDistance" on "latitude" and
// "longitude").
type DyadicParam struct {
	FuncName  string
	AttrName1 string
	AttrName2 string
}

// InteractionParam names an attribute-interaction change statistic
// reading two attribute columns of the same node pair.
type InteractionParam struct {
	FuncName  string
	AttrName1 string
	AttrName2 string
}

// Config holds every parsed configuration field. Defaults match
// estimconfigparser.h's DEFAULT_* constants.
type Config struct {
	ACA_S    float64
	ACA_EE   float64
	CompC    float64
	IfdK     float64
	SamplerM uint
	Ssteps   uint
	EEsteps  uint
	EEinner  uint

	OutputAllSteps         bool
	UseIFDSampler          bool
	OutputSimulatedNetwork bool

	ArclistFilename  string
	BinattrFilename  string
	CatattrFilename  string
	ContattrFilename string
	SetattrFilename  string
	ThetaFilePrefix  string
	DzAFilePrefix    string
	SimNetFilePrefix string
	ZoneFilename     string
	TermFilename     string

	UseConditionalEstimation bool
	CitationERGM             bool
	ForbidReciprocity        bool
	AllowLoops               bool

	UseBorisenkoUpdate bool
	LearningRate       float64
	MinTheta           float64

	MinThetaMean     float64
	ThetaSDThreshold float64

	StructParams          []string
	AttrParams            []AttrParam
	DyadicParams          []DyadicParam
	AttrInteractionParams []InteractionParam
}

// Default returns the original implementation's default tunables, with
// no filenames or statistic parameters set.
func Default() Config {
	return Config{
		ACA_S:            0.1,
		ACA_EE:           0.001,
		CompC:            1e-2,
		IfdK:             0.1,
		SamplerM:         1000,
		Ssteps:           100,
		EEsteps:          100,
		EEinner:          10,
		LearningRate:     0.01,
		MinTheta:         0.1,
		MinThetaMean:     0.1,
		ThetaSDThreshold: 1e-10,
	}
}
