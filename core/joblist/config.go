package joblist

// Config holds configuration for batch job runs.
type Config struct {
	// PauseOnExit keeps the console open until Enter is pressed after a run.
	PauseOnExit bool `mapstructure:"pause_on_exit" default:"true"`
	// StrictExit makes the process exit non-zero when any job failed.
	StrictExit bool `mapstructure:"strict_exit" default:"false"`
}
