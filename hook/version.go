package hook

import (
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/kolkov/dynhook/hook/callback"
	"github.com/kolkov/dynhook/internal/hook/logging"
)

// Version information for dynhook.
const (
	// Version is the current version of the framework.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Engine API versions. An engine adapter announces the version of the scope
// capability surface it implements; CheckEngine accepts versions with the
// same major version as EngineAPI that are not older than MinEngineVersion.
const (
	EngineAPI        = "v1.2.0"
	MinEngineVersion = "v1.1.0"
)

// Info provides runtime information about the framework.
type Info struct {
	// Version is the framework version string.
	Version string

	// EngineAPI is the engine API version the framework is built against.
	EngineAPI string

	// MaxArity is the largest action callback arity.
	MaxArity int

	// MaxConditionalArity is the largest conditional callback arity.
	MaxConditionalArity int
}

// GetInfo returns information about the framework.
//
// Example:
//
//	info := hook.GetInfo()
//	fmt.Printf("dynhook %s (engine API %s)\n", info.Version, info.EngineAPI)
func GetInfo() Info {
	return Info{
		Version:             Version,
		EngineAPI:           EngineAPI,
		MaxArity:            callback.MaxArity,
		MaxConditionalArity: callback.MaxConditionalArity,
	}
}

// VersionError reports an engine API version the framework cannot work with.
type VersionError struct {
	Engine string // version announced by the engine
	Reason string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("hook: engine API %q: %s", e.Engine, e.Reason)
}

// CheckEngine reports whether an engine implementing API version v can host
// dynhook callbacks. Versions use semantic version syntax with a leading
// "v" (e.g. "v1.2.0").
//
// Returns:
//   - error: *VersionError if v is malformed or incompatible, nil otherwise
func CheckEngine(v string) error {
	var reason string
	switch {
	case !semver.IsValid(v):
		reason = "not a semantic version"
	case semver.Major(v) != semver.Major(EngineAPI):
		reason = "major version differs from " + semver.Major(EngineAPI)
	case semver.Compare(v, MinEngineVersion) < 0:
		reason = "older than " + MinEngineVersion
	default:
		return nil
	}
	err := &VersionError{Engine: v, Reason: reason}
	logging.L().Err().Err(err).Log("dynhook: incompatible engine")
	return err
}
