package cmakeext

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFromGOOS(t *testing.T) {
	testCases := map[string]PlatformFamily{
		"windows": PlatformWindows,
		"darwin":  PlatformDarwin,
		"linux":   PlatformLinux,
		"freebsd": PlatformOther,
		"plan9":   PlatformOther,
	}

	for goos, expected := range testCases {
		assert.Equal(t, expected, platformFromGOOS(goos), goos)
	}
}

func TestPlatformExtSuffix(t *testing.T) {
	assert.Equal(t, ".pyd", PlatformWindows.ExtSuffix())
	assert.Equal(t, ".so", PlatformLinux.ExtSuffix())
	assert.Equal(t, ".so", PlatformDarwin.ExtSuffix())
}

func TestPlatformTag(t *testing.T) {
	testCases := []struct {
		goos, goarch string
		expected     string
	}{
		{"linux", "amd64", "linux-x86_64"},
		{"linux", "arm64", "linux-aarch64"},
		{"linux", "386", "linux-i686"},
		{"freebsd", "riscv64", "freebsd-riscv64"},
		{"darwin", "arm64", "macosx-arm64"},
		{"darwin", "amd64", "macosx-x86_64"},
		{"windows", "amd64", "win-amd64"},
		{"windows", "386", "win32"},
		{"windows", "arm64", "win-arm64"},
	}

	for _, tc := range testCases {
		t.Run(tc.goos+"/"+tc.goarch, func(t *testing.T) {
			assert.Equal(t, tc.expected, platformTag(tc.goos, tc.goarch))
		})
	}
}

func TestPlatformFamilyTag(t *testing.T) {
	assert.Equal(t, platformTag("windows", runtime.GOARCH), PlatformWindows.Tag())
	assert.Equal(t, platformTag("darwin", runtime.GOARCH), PlatformDarwin.Tag())
	assert.Equal(t, platformTag("linux", runtime.GOARCH), PlatformLinux.Tag())
	assert.Equal(t, platformTag(runtime.GOOS, runtime.GOARCH), PlatformOther.Tag())
	assert.Equal(t, DetectPlatform().Tag(), PlatformTag())
}
