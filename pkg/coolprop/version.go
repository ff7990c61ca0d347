package coolprop

var (
	// WrapperVersionString is the wrapper's own semantic version, populated
	// at build time via ldflags. In development it defaults to
	// v0.0.0-in-progress.
	WrapperVersionString = "v0.0.0-in-progress"
)

// WrapperVersion returns the version of this Go wrapper, which is independent
// of the native library version reported by Version.
func WrapperVersion() string {
	return WrapperVersionString
}
