package sdl

// Candidates returns the library paths to try in order, with an optional
// override, usually from the environment, in front.
func Candidates(override string, names ...string) []string {
	if override == "" {
		return names
	}

	return append([]string{override}, names...)
}
