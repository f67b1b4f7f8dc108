package rulefile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/logger"
)

const attributeKey = "attribute"

// Parse builds a RuleSet for T from a YAML rule document. Attributes are bound
// to accessors through resolve.
func Parse[T any](data []byte, resolve validation.AttributeResolver[T], opts ...Option) (*validation.RuleSet[T], error) {
	return parse(data, "", resolve, newOptions(opts))
}

// Load reads a YAML rule document from r.
func Load[T any](r io.Reader, resolve validation.AttributeResolver[T], opts ...Option) (*validation.RuleSet[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parse(data, "", resolve, newOptions(opts))
}

// LoadFile reads the YAML rule document at path.
func LoadFile[T any](path string, resolve validation.AttributeResolver[T], opts ...Option) (*validation.RuleSet[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parse(data, path, resolve, newOptions(opts))
}

// FromEnv loads the rule file named by VALIDATION_RULES_FILE. Unless WithLogger
// is given, logging goes to stderr as configured by logger.Config.
func FromEnv[T any](resolve validation.AttributeResolver[T], opts ...Option) (*validation.RuleSet[T], error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	if !o.hasLogger {
		var logCfg logger.Config
		if err := config.Load(&logCfg); err != nil {
			return nil, err
		}
		log, err := logger.FromConfig(logCfg, os.Stderr)
		if err != nil {
			return nil, err
		}
		o.logger = log
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parse(data, cfg.Path, resolve, o)
}

type document struct {
	Rules yaml.Node `yaml:"rules"`
}

func parse[T any](data []byte, source string, resolve validation.AttributeResolver[T], o *options) (*validation.RuleSet[T], error) {
	if resolve == nil {
		return nil, fmt.Errorf("%w: nil attribute resolver", ErrUnknownAttribute)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	b := validation.NewBuilder[T](validation.WithLogger(o.logger))

	switch doc.Rules.Kind {
	case 0:
		// No rules key or an empty document.
	case yaml.ScalarNode:
		if doc.Rules.Tag != "!!null" {
			return nil, fmt.Errorf("%w: line %d: rules must be a list", ErrInvalidRuleFile, doc.Rules.Line)
		}
	case yaml.SequenceNode:
		for i, entry := range doc.Rules.Content {
			if err := declare(b, entry, resolve, o); err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: line %d: rules must be a list", ErrInvalidRuleFile, doc.Rules.Line)
	}

	rs := b.Build()
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "validation rules loaded",
		logger.Component("rulefile"),
		logger.Source(source),
		logger.RuleCount(rs.Len()),
	)
	return rs, nil
}

// declare adds the checks of one entry in the order they appear in the file.
func declare[T any](b *validation.Builder[T], entry *yaml.Node, resolve validation.AttributeResolver[T], o *options) error {
	if entry.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: rule must be a mapping", ErrInvalidRuleFile, entry.Line)
	}

	var attribute string
	var found bool
	for i := 0; i+1 < len(entry.Content); i += 2 {
		if entry.Content[i].Value == attributeKey {
			if err := entry.Content[i+1].Decode(&attribute); err != nil || attribute == "" {
				return fmt.Errorf("%w: line %d: attribute must be a non-empty string", ErrInvalidRuleFile, entry.Content[i+1].Line)
			}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: line %d: missing %q", ErrInvalidRuleFile, entry.Line, attributeKey)
	}

	get, ok := resolve.Resolve(attribute)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, attribute)
	}

	checks := make([]validation.Check, 0, len(entry.Content)/2)
	for i := 0; i+1 < len(entry.Content); i += 2 {
		key, value := entry.Content[i], entry.Content[i+1]
		if key.Value == attributeKey {
			continue
		}
		c, skip, err := toCheck(validation.Kind(key.Value), value, o)
		if err != nil {
			return fmt.Errorf("%s: %w", attribute, err)
		}
		if !skip {
			checks = append(checks, c)
		}
	}

	b.Declare(attribute, get, checks...)
	return nil
}

func toCheck(kind validation.Kind, value *yaml.Node, o *options) (validation.Check, bool, error) {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return validation.Check{}, false, fmt.Errorf("%w: line %d: %w", ErrInvalidRuleFile, value.Line, err)
	}
	if raw == nil || raw == false {
		return validation.Check{}, true, nil
	}

	switch kind {
	case validation.KindPresence:
		required, ok := raw.(bool)
		if !ok {
			return validation.Check{}, false, fmt.Errorf("%w: line %d: presence must be a boolean", ErrInvalidRuleFile, value.Line)
		}
		return validation.Presence(required), false, nil

	case validation.KindFormat:
		pattern, ok := raw.(string)
		if !ok {
			return validation.Check{}, false, fmt.Errorf("%w: line %d: format must be a string", ErrInvalidRuleFile, value.Line)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return validation.Check{}, false, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
		}
		return validation.FormatRegexp(re), false, nil

	case validation.KindType:
		name, ok := raw.(string)
		if !ok {
			return validation.Check{}, false, fmt.Errorf("%w: line %d: type must be a name", ErrInvalidRuleFile, value.Line)
		}
		descriptor, ok := o.types[name]
		if !ok {
			return validation.Check{}, false, fmt.Errorf("%w: %s", ErrUnknownType, name)
		}
		return validation.Type(descriptor), false, nil

	default:
		// Evaluation reports unknown kinds, so they are kept as declared.
		return validation.NewCheck(kind, raw), false, nil
	}
}
