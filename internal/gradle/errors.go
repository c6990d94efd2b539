package gradle

import "errors"

var (
	// ErrConfigNotFound indicates the build script is missing from the project.
	ErrConfigNotFound = errors.New("app/build.gradle not found")

	// ErrManifestNotFound indicates the Android manifest is missing.
	ErrManifestNotFound = errors.New("AndroidManifest.xml not found")

	// ErrBlockNotFound indicates the dependencies block markers were never
	// encountered, so no insertion point exists.
	ErrBlockNotFound = errors.New("dependencies block not found")

	// ErrAnchorNotFound indicates the manifest has no application element to
	// anchor a permission insertion.
	ErrAnchorNotFound = errors.New("application element not found")

	// ErrUnknownPermission indicates a permission argument that is neither a
	// known shortcut nor a qualified permission name.
	ErrUnknownPermission = errors.New("unknown permission")

	// ErrMalformedVersion indicates a versionName whose trailing component is
	// not numeric and therefore cannot be incremented.
	ErrMalformedVersion = errors.New("malformed version name")
)
