package gradle

import (
	"sort"
	"strings"
)

// depShortcuts maps short names to full Maven coordinates for commonly used
// Android libraries.
var depShortcuts = map[string]string{
	"retrofit":   "com.squareup.retrofit2:retrofit:2.9.0",
	"gson":       "com.google.code.gson:gson:2.10.1",
	"glide":      "com.github.bumptech.glide:glide:4.16.0",
	"coil":       "io.coil-kt:coil-compose:2.5.0",
	"navigation": "androidx.navigation:navigation-compose:2.7.5",
	"lifecycle":  "androidx.lifecycle:lifecycle-runtime-ktx:2.6.2",
	"coroutines": "org.jetbrains.kotlinx:kotlinx-coroutines-android:1.7.3",
	"okhttp":     "com.squareup.okhttp3:okhttp:4.12.0",
	"material":   "com.google.android.material:material:1.11.0",
	"room":       "androidx.room:room-runtime:2.6.1",
}

// permShortcuts maps short names to fully qualified Android permissions.
var permShortcuts = map[string]string{
	"internet":            "android.permission.INTERNET",
	"camera":              "android.permission.CAMERA",
	"storage":             "android.permission.WRITE_EXTERNAL_STORAGE",
	"read_storage":        "android.permission.READ_EXTERNAL_STORAGE",
	"location":            "android.permission.ACCESS_FINE_LOCATION",
	"background_location": "android.permission.ACCESS_BACKGROUND_LOCATION",
	"network_state":       "android.permission.ACCESS_NETWORK_STATE",
	"wifi_state":          "android.permission.ACCESS_WIFI_STATE",
	"bluetooth":           "android.permission.BLUETOOTH",
	"record_audio":        "android.permission.RECORD_AUDIO",
}

// ResolveDependency maps a shortcut (case-insensitive) to its coordinate, or
// returns the argument unchanged when it is not a known shortcut.
func ResolveDependency(name string) string {
	if coord, ok := depShortcuts[strings.ToLower(name)]; ok {
		return coord
	}
	return name
}

// ResolvePermission maps a shortcut (case-insensitive) to its qualified name.
// A non-shortcut argument is accepted as-is when it contains a dot, the
// heuristic for an already qualified permission.
func ResolvePermission(name string) (string, error) {
	if perm, ok := permShortcuts[strings.ToLower(name)]; ok {
		return perm, nil
	}
	if strings.Contains(name, ".") {
		return name, nil
	}
	return "", ErrUnknownPermission
}

// Shortcut pairs a short name with the value it expands to.
type Shortcut struct {
	Name  string
	Value string
}

// DependencyShortcuts returns the dependency shortcut table sorted by name.
func DependencyShortcuts() []Shortcut {
	return sortedShortcuts(depShortcuts)
}

// PermissionShortcuts returns the permission shortcut table sorted by name.
func PermissionShortcuts() []Shortcut {
	return sortedShortcuts(permShortcuts)
}

func sortedShortcuts(table map[string]string) []Shortcut {
	out := make([]Shortcut, 0, len(table))
	for name, value := range table {
		out = append(out, Shortcut{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
