// Package gen maps parsed GraphQL schemas to render-ready data models.
//
// # Architecture
//
// The mapping pipeline follows this flow:
//
//	MappingConfig (+ Supplier override)
//	        ↓
//	   Resolve: combine, defaults, validate, sanitize
//	        ↓
//	   Context (config bound to one load.Document)
//	        ↓
//	   Definition mappers (type, input, enum, union, interface, APIs, client)
//	        ↓
//	   []Artifact handed to compiler/render
//
// # Key Types
//
//   - MappingConfig: user configuration, nil options are unset
//   - Context: read-only view over the resolved config and the document
//   - NamedDefinition: a resolved target type name
//   - DataModel: render-ready key/value model of one artifact
//   - Artifact: an artifact kind paired with its data model
//   - Language: target language syntax (Java, Kotlin, Go)
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: invalid option value
//   - ConflictError: options that would produce colliding artifact names
//   - TypeShapeError: malformed type reference in the document
//   - GenerationError: mapping failure of one artifact
//
// Example error handling:
//
//	g, err := gen.New(cfg)
//	if err != nil {
//	    if gen.IsConflictError(err) {
//	        // Change the naming options
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithPackages("com.example", "com.example.model", "com.example.api"),
//	    gen.WithAsyncAPI("reactor.core.publisher.Mono", "reactor.core.publisher.Flux"),
//	    gen.WithDirectiveAnnotations(map[string]string{
//	        "size": "@javax.validation.constraints.Size(min={{min}}, max={{max}})",
//	    }),
//	)
//
// # Directive Templates
//
// Directive annotation templates hold "{{arg}}" placeholders, optionally
// followed by a formatter: "{{arg?toString}}", "{{arg?toArray}}" or
// "{{arg?toArrayOfStrings}}". Placeholders without a matching directive
// argument are kept verbatim and logged at WARN level.
package gen
