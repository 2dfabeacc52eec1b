package cmakeext

import "runtime"

// Platform constants
const (
	platformWindows = "windows"
	platformDarwin  = "darwin"
	platformLinux   = "linux"
)

// PlatformFamily is the operating system family the build runs on.
//
// It is resolved once at startup with DetectPlatform and passed around
// explicitly, so tests can simulate any family on any host.
type PlatformFamily int

// Platform families
const (
	PlatformOther PlatformFamily = iota
	PlatformLinux
	PlatformDarwin
	PlatformWindows
)

// DetectPlatform returns the family of the running host.
func DetectPlatform() PlatformFamily {
	return platformFromGOOS(runtime.GOOS)
}

func platformFromGOOS(goos string) PlatformFamily {
	switch goos {
	case platformWindows:
		return PlatformWindows
	case platformDarwin:
		return PlatformDarwin
	case platformLinux:
		return PlatformLinux
	default:
		return PlatformOther
	}
}

func (p PlatformFamily) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformDarwin:
		return "Darwin"
	case PlatformLinux:
		return "Linux"
	default:
		return "Other"
	}
}

// ExtSuffix returns the file suffix Python uses for extension modules.
func (p PlatformFamily) ExtSuffix() string {
	if p == PlatformWindows {
		return ".pyd"
	}
	return ".so"
}

// PlatformTag returns the distutils-style platform name of the running host,
// e.g. "linux-x86_64" or "win-amd64".
func PlatformTag() string {
	return DetectPlatform().Tag()
}

// Tag returns the distutils-style platform name for family on the host's
// architecture. PlatformOther falls back to the host's GOOS.
func (p PlatformFamily) Tag() string {
	goos := runtime.GOOS
	switch p {
	case PlatformWindows:
		goos = platformWindows
	case PlatformDarwin:
		goos = platformDarwin
	case PlatformLinux:
		goos = platformLinux
	}
	return platformTag(goos, runtime.GOARCH)
}

func platformTag(goos, goarch string) string {
	switch goos {
	case platformWindows:
		switch goarch {
		case "386":
			return "win32"
		case "arm64":
			return "win-arm64"
		default:
			return "win-amd64"
		}
	case platformDarwin:
		if goarch == "amd64" {
			return "macosx-x86_64"
		}
		return "macosx-arm64"
	}

	machine := goarch
	switch goarch {
	case "amd64":
		machine = "x86_64"
	case "arm64":
		machine = "aarch64"
	case "386":
		machine = "i686"
	}
	return goos + "-" + machine
}
