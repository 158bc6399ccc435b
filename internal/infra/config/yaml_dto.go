package config

// YAMLDefaults mirrors the shape of slicer.yaml. Every field is optional;
// missing values fall back to the built-in defaults.
type YAMLDefaults struct {
	Cut  YAMLCutDefaults  `yaml:"cut"`
	Head YAMLHeadDefaults `yaml:"head"`
}

type YAMLCutDefaults struct {
	Delimiter string `yaml:"delimiter"`
}

type YAMLHeadDefaults struct {
	Lines int64 `yaml:"lines"`
}
