package cmd

// Exit codes for the relkit CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigurationError indicates a malformed or inconsistent
	// instruction file or release descriptor.
	ExitConfigurationError = 2

	// ExitIOError indicates a filesystem read or write failure.
	ExitIOError = 3

	// ExitNotFound indicates a descriptor, instruction file, or artifact
	// directory was not found.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigurationError:
		return "Configuration Error"
	case ExitIOError:
		return "I/O Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
