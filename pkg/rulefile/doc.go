// Package rulefile loads validation rules from YAML documents.
//
// A rule file lists one entry per attribute group. Each entry names the
// attribute and then any number of checks, which are declared in the order
// they appear:
//
//	rules:
//	  - attribute: first_name
//	    presence: true
//	  - attribute: number
//	    format: '\d*'
//	  - attribute: age
//	    type: integer
//
// Attributes are bound to accessors through a validation.AttributeResolver,
// for example validation.Fields[T]() or an explicit validation.Getters[T].
// Type names resolve to descriptors registered with WithTypes on top of
// validation.DefaultTypes. Checks set to false or null are skipped. Keys the
// evaluator does not know are kept and reported as
// *validation.UnknownCheckKindError when the rules are evaluated.
//
// FromEnv reads the file named by VALIDATION_RULES_FILE using pkg/config.
package rulefile
