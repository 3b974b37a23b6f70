package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bwarfield-amplify/rcubic/client"
)

// Execute runs the root command and resolves the final exit code. The
// contract is closed: 0 when the scheduler accepted the command, 1 when it
// answered negatively or the invocation failed for any ordinary reason, 2
// when the secure transport could not be negotiated at all.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var negErr *client.NegotiationError
	switch {
	case errors.As(err, &negErr):
		// Negotiation failures get code 2 regardless of which command was
		// requested, whether they arose constructing the client or during
		// the single remote call.
		_, _ = fmt.Fprintln(os.Stderr, negErr.Error())
		exitFunc(2)
	case errors.Is(err, errCommandFailed):
		// The scheduler answered and said no. The command has already
		// printed anything it has to say.
		exitFunc(1)
	default:
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
