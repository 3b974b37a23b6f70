package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/bwarfield-amplify/rcubic/client"
)

// fakeScheduler implements schedulerClient for tests. Every method records
// its name in calls; unset function fields answer true.
type fakeScheduler struct {
	checkFeature   func(ctx context.Context, feature string) (bool, error)
	manualOverride func(ctx context.Context, script string) (bool, error)
	progress       func(ctx context.Context, script, version string, value int) (bool, error)
	reschedule     func(ctx context.Context, script string) (bool, error)
	reclone        func(ctx context.Context) (bool, error)
	cancel         func(ctx context.Context) (bool, error)

	calls []string
}

func (f *fakeScheduler) CheckFeature(ctx context.Context, feature string) (bool, error) {
	f.calls = append(f.calls, "checkFeature")
	if f.checkFeature != nil {
		return f.checkFeature(ctx, feature)
	}
	return true, nil
}

func (f *fakeScheduler) ManualOverride(ctx context.Context, script string) (bool, error) {
	f.calls = append(f.calls, "manualOverride")
	if f.manualOverride != nil {
		return f.manualOverride(ctx, script)
	}
	return true, nil
}

func (f *fakeScheduler) Progress(ctx context.Context, script, version string, value int) (bool, error) {
	f.calls = append(f.calls, "progress")
	if f.progress != nil {
		return f.progress(ctx, script, version, value)
	}
	return true, nil
}

func (f *fakeScheduler) Reschedule(ctx context.Context, script string) (bool, error) {
	f.calls = append(f.calls, "reschedule")
	if f.reschedule != nil {
		return f.reschedule(ctx, script)
	}
	return true, nil
}

func (f *fakeScheduler) Reclone(ctx context.Context) (bool, error) {
	f.calls = append(f.calls, "reclone")
	if f.reclone != nil {
		return f.reclone(ctx)
	}
	return true, nil
}

func (f *fakeScheduler) Cancel(ctx context.Context) (bool, error) {
	f.calls = append(f.calls, "cancel")
	if f.cancel != nil {
		return f.cancel(ctx)
	}
	return true, nil
}

// stubTransport points newClientFunc at fake for the duration of the test
// and returns a pointer to the Config the command built, so tests can assert
// on credentials and address wiring.
func stubTransport(t *testing.T, fake *fakeScheduler) *client.Config {
	t.Helper()
	orig := newClientFunc
	t.Cleanup(func() { newClientFunc = orig })
	captured := &client.Config{}
	newClientFunc = func(cfg client.Config) (schedulerClient, error) {
		*captured = cfg
		return fake, nil
	}
	return captured
}

// stubTransportErr makes client construction fail with err.
func stubTransportErr(t *testing.T, err error) {
	t.Helper()
	orig := newClientFunc
	t.Cleanup(func() { newClientFunc = orig })
	newClientFunc = func(cfg client.Config) (schedulerClient, error) {
		return nil, err
	}
}

// stubExit captures the exit code Execute resolves. -1 means exitFunc was
// never called, i.e. the process would exit 0 naturally.
func stubExit(t *testing.T) *int {
	t.Helper()
	orig := exitFunc
	t.Cleanup(func() { exitFunc = orig })
	code := -1
	exitFunc = func(c int) { code = c }
	return &code
}

// captureOutput redirects stdout and stderr and returns fetchers for what
// was written. Call each fetcher at most once.
func captureOutput(t *testing.T) (stdout, stderr func() string) {
	t.Helper()
	oldStdout, oldStderr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout, os.Stderr = outW, errW
	t.Cleanup(func() { os.Stdout, os.Stderr = oldStdout, oldStderr })

	read := func(r, w *os.File) func() string {
		return func() string {
			_ = w.Close()
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			return buf.String()
		}
	}
	return read(outR, outW), read(errR, errW)
}

// resetConfig clears global configuration so tests don't leak state.
func resetConfig() {
	viper.Reset()
	viper.SetEnvPrefix("RCUBIC")
	viper.AutomaticEnv()
	// Re-bind flags: viper.Reset drops the bindings made in init, and
	// without them an env var would beat an explicitly changed flag.
	for _, name := range []string{"addr", "port", "cacert", "token", "timeout", "debug"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	// Reset flags to defaults and clear Changed status on every command
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, sub := range rootCmd.Commands() {
		reset(sub.Flags())
		sub.SilenceUsage = false
	}
	cfgAddr = "localhost"
	cfgPort = 8002
	cfgCACert = ""
	cfgToken = ""
	cfgTimeout = 0
	cfgDebug = false
	cfgScript = ""
	cfgVersion = ""
	cfgProgress = 0
	cfgFeature = ""
	rootCmd.SetArgs(nil)
}

// runCLI drives a full Execute() with the given argv.
func runCLI(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	Execute()
}
