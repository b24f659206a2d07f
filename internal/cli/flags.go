package cli

// DefaultOutputDir is where the generated JAMS files land unless
// overridden by flag or config file
const DefaultOutputDir = "UrbanSound8K_jams"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile      string
	MetadataFile string
	OutputDir    string
	BuildIndex   bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir: DefaultOutputDir,
	}
}
