package pixavatar

// GenerateAvatarData returns random avatar data for the seed.
// An empty seed is replaced by one obtained from DefaultSeedProvider
// and an empty separator by DefaultSeparator.
func GenerateAvatarData(complexity int, separator, seed string) (string, error) {
	g := NewGenerator()
	g.Complexity = complexity
	g.Seed = seed
	if separator != "" {
		g.Separator = separator
	}
	return g.Generate()
}

// RenderAvatarFromData renders the avatar data as SVG markup.
// A nil shape draws squares, a non positive size falls back to DefaultSize
// and an empty separator to DefaultSeparator.
func RenderAvatarFromData(data string, shape Shape, size int, separator string) (string, error) {
	r := NewRenderer()
	if shape != nil {
		r.Shape = shape
	}
	if size > 0 {
		r.Size = size
	}
	if separator != "" {
		r.Separator = separator
	}
	return r.Render(data)
}

// RenderRandomAvatar generates avatar data from an unpredictable seed and renders it.
func RenderRandomAvatar(complexity int, shape Shape, size int) (string, error) {
	data, err := GenerateAvatarData(complexity, DefaultSeparator, "")
	if err != nil {
		return "", err
	}
	return RenderAvatarFromData(data, shape, size, DefaultSeparator)
}
