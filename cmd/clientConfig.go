package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/bwarfield-amplify/rcubic/client"
)

// clientConfig assembles the transport configuration from the global flags.
// Credentials live only inside this value for the duration of the single
// remote call; nothing is persisted between invocations.
func clientConfig() client.Config {
	level := hclog.Off
	if cfgDebug {
		level = hclog.Debug
	}
	return client.Config{
		Addr:    cfgAddr,
		Port:    cfgPort,
		CACert:  cfgCACert,
		Token:   cfgToken,
		Timeout: cfgTimeout,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:   "rcubic-ctl",
			Level:  level,
			Output: os.Stderr,
		}),
	}
}
