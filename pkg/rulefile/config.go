package rulefile

// Config locates the rule file loaded by FromEnv.
type Config struct {
	Path string `env:"VALIDATION_RULES_FILE,required,notEmpty"` // Path to the YAML rule file.
}
