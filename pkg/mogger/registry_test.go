package mogger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFreshGlobal points the process-wide registry at an empty one for
// the duration of the test.
func withFreshGlobal(t *testing.T) {
	t.Helper()
	prev := global
	global = new(Registry)
	t.Cleanup(func() { global = prev })
}

func TestRegistryInstallOnce(t *testing.T) {
	var r Registry
	assert.Equal(t, Uninitialized, r.State())

	first := New(Config{}, FormatPlainText, WithOutput(&bytes.Buffer{}))
	require.NoError(t, r.Install(first))
	assert.Equal(t, Initialized, r.State())

	second := New(DefaultConfig(), FormatPlainText, WithOutput(&bytes.Buffer{}))
	assert.ErrorIs(t, r.Install(second), ErrAlreadyInitialized)

	got, ok := r.Logger()
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestRegistryRejectsNil(t *testing.T) {
	var r Registry
	assert.ErrorIs(t, r.Install(nil), ErrNilLogger)
	assert.Equal(t, Uninitialized, r.State())
}

func TestRegistryConcurrentInstall(t *testing.T) {
	var r Registry
	const n = 32

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Install(New(Config{}, FormatPlainText, WithOutput(&bytes.Buffer{})))
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyInitialized)
	}
	assert.Equal(t, 1, succeeded)
}

// lockedBuffer serializes writes from concurrent loggers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestGlobalLogConcurrentReaders(t *testing.T) {
	withFreshGlobal(t)
	out := &lockedBuffer{}
	require.NoError(t, Install(New(DefaultConfig(), FormatPlainText,
		WithOutput(out),
		WithClock(fixedClock),
	)))

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Log(LevelInfo, "ready")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, n)
	for _, ln := range lines {
		assert.Equal(t, "[Info] [14:07 05/03/2024] ready", xansi.Strip(ln))
	}
	assert.Equal(t, Initialized, CurrentState())
}

func TestInitTwicePanics(t *testing.T) {
	withFreshGlobal(t)
	buf := &bytes.Buffer{}

	m := InitDefault(WithOutput(buf), WithColorProfile(termenv.Ascii), WithClock(fixedClock))
	assert.Equal(t, Initialized, CurrentState())

	assert.PanicsWithValue(t, ErrAlreadyInitialized, func() {
		Init(Config{}, FormatPlainText, WithOutput(buf))
	})
	assert.PanicsWithValue(t, ErrAlreadyInitialized, func() {
		InitDefault(WithOutput(buf))
	})

	got, ok := Global()
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestGlobalLog(t *testing.T) {
	withFreshGlobal(t)
	buf := &bytes.Buffer{}

	assert.PanicsWithValue(t, ErrNotInitialized, func() {
		Log(LevelInfo, "too early")
	})

	cfg := NewBuilder().TimeFormat(TimeDefault).LevelFormat(LevelFormatDefault).Build()
	require.NoError(t, Install(New(cfg, FormatPlainText,
		WithOutput(buf),
		WithColorProfile(termenv.Ascii),
		WithClock(fixedClock),
	)))
	Log(LevelError, "disk full")

	assert.Equal(t, "[Error] [14:07] disk full\n", buf.String())
}
