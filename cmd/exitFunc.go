package cmd

import "os"

// exitFunc is the single path to process exit. Tests swap it out to observe
// the resolved exit code; everywhere else it stays os.Exit.
var exitFunc = os.Exit
