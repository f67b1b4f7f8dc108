// Package logger builds the *slog.Logger used by the validation packages and
// provides attribute helpers that keep key names consistent.
//
// New creates a logger from functional options:
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment – level
//     and format defaults per environment, plus service and env attributes.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel, WithOutput, WithAttr – the usual knobs.
//
// FromConfig builds the same logger from a Config loaded from the environment:
// VALIDATION_ENV and VALIDATION_SERVICE pick a preset, and VALIDATION_LOG_LEVEL
// and VALIDATION_LOG_FORMAT override its level and format.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log, err := logger.FromConfig(cfg, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	rules := validation.NewBuilder[User](validation.WithLogger(log)).
//	    Declare("email", validation.Field[User]("Email"), validation.Presence(true)).
//	    Build()
//
// Attribute helpers such as Component, Attribute, CheckKind and Error return
// slog.Attr values; Error and Errors return an empty Attr for nil errors so
// they can be passed unconditionally.
package logger
