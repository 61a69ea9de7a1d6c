package errors

type ExitCode int

const (
	GenericFailureExitCode ExitCode = 1

	// Allocation tool exit codes
	ConfigurationFailureExitCode ExitCode = 64
	SourceUnavailableExitCode    ExitCode = 66
	CapacityCheckFailureExitCode ExitCode = 70
	OverwriteConflictExitCode    ExitCode = 73
	AllocationExhaustedExitCode  ExitCode = 74
	OutputWriteFailureExitCode   ExitCode = 75
)
