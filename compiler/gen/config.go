package gen

import (
	"maps"
	"slices"
	"strings"
)

// APINamePrefixStrategy selects the prefix of generated API interfaces.
type APINamePrefixStrategy string

// API name prefix strategies.
const (
	// PrefixConstant uses the configured APINamePrefix.
	PrefixConstant APINamePrefixStrategy = "CONSTANT"
	// PrefixFileName uses the schema file name as prefix.
	PrefixFileName APINamePrefixStrategy = "FILE_NAME_AS_PREFIX"
	// PrefixFolderName uses the schema folder name as prefix.
	PrefixFolderName APINamePrefixStrategy = "FOLDER_NAME_AS_PREFIX"
)

// Valid reports whether s is a known strategy.
func (s APINamePrefixStrategy) Valid() bool {
	switch s {
	case PrefixConstant, PrefixFileName, PrefixFolderName:
		return true
	}
	return false
}

// APIRootInterfaceStrategy selects how root API interfaces are grouped.
type APIRootInterfaceStrategy string

// API root interface strategies.
const (
	// SingleInterface generates one root interface per root type.
	SingleInterface APIRootInterfaceStrategy = "SINGLE_INTERFACE"
	// InterfacePerSchema generates one root interface per root type and schema file.
	InterfacePerSchema APIRootInterfaceStrategy = "INTERFACE_PER_SCHEMA"
)

// Valid reports whether s is a known strategy.
func (s APIRootInterfaceStrategy) Valid() bool {
	return s == SingleInterface || s == InterfacePerSchema
}

// Default option values. Language specific defaults (validation annotation,
// async return type, scalar types) are provided by the target Language.
const (
	DefaultBuilder                       = true
	DefaultEqualsAndHashCode             = false
	DefaultToString                      = false
	DefaultGenerateClient                = false
	DefaultGenerateAPIs                  = true
	DefaultGenerateImmutableModels       = false
	DefaultGenerateAsyncAPI              = false
	DefaultGenerateParameterizedResolver = true
	DefaultGenerateExtensionResolver     = false
	DefaultGenerateDataFetchingEnv       = false
	DefaultGenerateModelsForRootTypes    = false
	DefaultRequestSuffix                 = "Request"
	DefaultResponseSuffix                = "Response"
	DefaultResponseProjectionSuffix      = "ResponseProjection"
	DefaultParametrizedInputSuffix       = "ParametrizedInput"
	DefaultResolverSuffix                = "Resolver"
	DefaultAPINamePrefixStrategy         = PrefixConstant
	DefaultAPIRootInterfaceStrategy      = SingleInterface
)

// MappingConfig holds the user configuration of a generation run.
// A nil option is unset: Combine only copies set options, and WithDefaults
// fills every unset option.
type MappingConfig struct {
	PackageName      *string `yaml:"packageName,omitempty" koanf:"packageName"`
	ModelPackageName *string `yaml:"modelPackageName,omitempty" koanf:"modelPackageName"`
	APIPackageName   *string `yaml:"apiPackageName,omitempty" koanf:"apiPackageName"`

	ModelNamePrefix          *string `yaml:"modelNamePrefix,omitempty" koanf:"modelNamePrefix"`
	ModelNameSuffix          *string `yaml:"modelNameSuffix,omitempty" koanf:"modelNameSuffix"`
	APINamePrefix            *string `yaml:"apiNamePrefix,omitempty" koanf:"apiNamePrefix"`
	APINameSuffix            *string `yaml:"apiNameSuffix,omitempty" koanf:"apiNameSuffix"`
	TypeResolverPrefix       *string `yaml:"typeResolverPrefix,omitempty" koanf:"typeResolverPrefix"`
	TypeResolverSuffix       *string `yaml:"typeResolverSuffix,omitempty" koanf:"typeResolverSuffix"`
	RequestSuffix            *string `yaml:"requestSuffix,omitempty" koanf:"requestSuffix"`
	ResponseSuffix           *string `yaml:"responseSuffix,omitempty" koanf:"responseSuffix"`
	ResponseProjectionSuffix *string `yaml:"responseProjectionSuffix,omitempty" koanf:"responseProjectionSuffix"`
	ParametrizedInputSuffix  *string `yaml:"parametrizedInputSuffix,omitempty" koanf:"parametrizedInputSuffix"`

	GenerateBuilder                               *bool `yaml:"generateBuilder,omitempty" koanf:"generateBuilder"`
	GenerateEqualsAndHashCode                     *bool `yaml:"generateEqualsAndHashCode,omitempty" koanf:"generateEqualsAndHashCode"`
	GenerateToString                              *bool `yaml:"generateToString,omitempty" koanf:"generateToString"`
	GenerateClient                                *bool `yaml:"generateClient,omitempty" koanf:"generateClient"`
	GenerateImmutableModels                       *bool `yaml:"generateImmutableModels,omitempty" koanf:"generateImmutableModels"`
	GenerateAPIs                                  *bool `yaml:"generateApis,omitempty" koanf:"generateApis"`
	GenerateAsyncAPI                              *bool `yaml:"generateAsyncApi,omitempty" koanf:"generateAsyncApi"`
	GenerateParameterizedFieldsResolvers          *bool `yaml:"generateParameterizedFieldsResolvers,omitempty" koanf:"generateParameterizedFieldsResolvers"`
	GenerateExtensionFieldsResolvers              *bool `yaml:"generateExtensionFieldsResolvers,omitempty" koanf:"generateExtensionFieldsResolvers"`
	GenerateDataFetchingEnvironmentArgumentInAPIs *bool `yaml:"generateDataFetchingEnvironmentArgumentInApis,omitempty" koanf:"generateDataFetchingEnvironmentArgumentInApis"`
	GenerateModelsForRootTypes                    *bool `yaml:"generateModelsForRootTypes,omitempty" koanf:"generateModelsForRootTypes"`

	APINamePrefixStrategy    *APINamePrefixStrategy    `yaml:"apiNamePrefixStrategy,omitempty" koanf:"apiNamePrefixStrategy"`
	APIRootInterfaceStrategy *APIRootInterfaceStrategy `yaml:"apiRootInterfaceStrategy,omitempty" koanf:"apiRootInterfaceStrategy"`

	ModelValidationAnnotation *string `yaml:"modelValidationAnnotation,omitempty" koanf:"modelValidationAnnotation"`
	APIAsyncReturnType        *string `yaml:"apiAsyncReturnType,omitempty" koanf:"apiAsyncReturnType"`
	APIAsyncReturnListType    *string `yaml:"apiAsyncReturnListType,omitempty" koanf:"apiAsyncReturnListType"`
	SubscriptionReturnType    *string `yaml:"subscriptionReturnType,omitempty" koanf:"subscriptionReturnType"`

	// CustomTypesMapping maps "Type" or "Type.field" to a target type.
	CustomTypesMapping map[string]string `yaml:"customTypesMapping,omitempty" koanf:"customTypesMapping"`
	// CustomAnnotationsMapping maps "Type" or "Type.field" to an annotation.
	CustomAnnotationsMapping map[string]string `yaml:"customAnnotationsMapping,omitempty" koanf:"customAnnotationsMapping"`
	// DirectiveAnnotationsMapping maps a directive name to an annotation template.
	DirectiveAnnotationsMapping map[string]string `yaml:"directiveAnnotationsMapping,omitempty" koanf:"directiveAnnotationsMapping"`

	// FieldsWithResolvers lists "Type" or "Type.field" entries that get field resolvers.
	FieldsWithResolvers []string `yaml:"fieldsWithResolvers,omitempty" koanf:"fieldsWithResolvers"`
	// FieldsWithoutResolvers lists "Type" or "Type.field" entries that never get field resolvers.
	FieldsWithoutResolvers []string `yaml:"fieldsWithoutResolvers,omitempty" koanf:"fieldsWithoutResolvers"`
}

// Clone returns a deep copy of the config.
func (c *MappingConfig) Clone() *MappingConfig {
	if c == nil {
		return &MappingConfig{}
	}
	n := *c
	n.CustomTypesMapping = maps.Clone(c.CustomTypesMapping)
	n.CustomAnnotationsMapping = maps.Clone(c.CustomAnnotationsMapping)
	n.DirectiveAnnotationsMapping = maps.Clone(c.DirectiveAnnotationsMapping)
	n.FieldsWithResolvers = slices.Clone(c.FieldsWithResolvers)
	n.FieldsWithoutResolvers = slices.Clone(c.FieldsWithoutResolvers)
	return &n
}

// Combine returns a copy of c where every option set in override replaces
// the option in c. Maps are merged key by key, and lists are unioned.
func (c *MappingConfig) Combine(override *MappingConfig) *MappingConfig {
	n := c.Clone()
	if override == nil {
		return n
	}
	pick(&n.PackageName, override.PackageName)
	pick(&n.ModelPackageName, override.ModelPackageName)
	pick(&n.APIPackageName, override.APIPackageName)
	pick(&n.ModelNamePrefix, override.ModelNamePrefix)
	pick(&n.ModelNameSuffix, override.ModelNameSuffix)
	pick(&n.APINamePrefix, override.APINamePrefix)
	pick(&n.APINameSuffix, override.APINameSuffix)
	pick(&n.TypeResolverPrefix, override.TypeResolverPrefix)
	pick(&n.TypeResolverSuffix, override.TypeResolverSuffix)
	pick(&n.RequestSuffix, override.RequestSuffix)
	pick(&n.ResponseSuffix, override.ResponseSuffix)
	pick(&n.ResponseProjectionSuffix, override.ResponseProjectionSuffix)
	pick(&n.ParametrizedInputSuffix, override.ParametrizedInputSuffix)
	pick(&n.GenerateBuilder, override.GenerateBuilder)
	pick(&n.GenerateEqualsAndHashCode, override.GenerateEqualsAndHashCode)
	pick(&n.GenerateToString, override.GenerateToString)
	pick(&n.GenerateClient, override.GenerateClient)
	pick(&n.GenerateImmutableModels, override.GenerateImmutableModels)
	pick(&n.GenerateAPIs, override.GenerateAPIs)
	pick(&n.GenerateAsyncAPI, override.GenerateAsyncAPI)
	pick(&n.GenerateParameterizedFieldsResolvers, override.GenerateParameterizedFieldsResolvers)
	pick(&n.GenerateExtensionFieldsResolvers, override.GenerateExtensionFieldsResolvers)
	pick(&n.GenerateDataFetchingEnvironmentArgumentInAPIs, override.GenerateDataFetchingEnvironmentArgumentInAPIs)
	pick(&n.GenerateModelsForRootTypes, override.GenerateModelsForRootTypes)
	pick(&n.APINamePrefixStrategy, override.APINamePrefixStrategy)
	pick(&n.APIRootInterfaceStrategy, override.APIRootInterfaceStrategy)
	pick(&n.ModelValidationAnnotation, override.ModelValidationAnnotation)
	pick(&n.APIAsyncReturnType, override.APIAsyncReturnType)
	pick(&n.APIAsyncReturnListType, override.APIAsyncReturnListType)
	pick(&n.SubscriptionReturnType, override.SubscriptionReturnType)
	n.CustomTypesMapping = mergeMap(n.CustomTypesMapping, override.CustomTypesMapping)
	n.CustomAnnotationsMapping = mergeMap(n.CustomAnnotationsMapping, override.CustomAnnotationsMapping)
	n.DirectiveAnnotationsMapping = mergeMap(n.DirectiveAnnotationsMapping, override.DirectiveAnnotationsMapping)
	n.FieldsWithResolvers = union(n.FieldsWithResolvers, override.FieldsWithResolvers)
	n.FieldsWithoutResolvers = union(n.FieldsWithoutResolvers, override.FieldsWithoutResolvers)
	return n
}

// WithDefaults returns a copy of c with every unset option set to its
// default. Generating the client forces GenerateToString, as requests are
// serialized through it.
func (c *MappingConfig) WithDefaults(lang Language) *MappingConfig {
	n := c.Clone()
	fill(&n.PackageName, "")
	fill(&n.ModelPackageName, "")
	fill(&n.APIPackageName, "")
	fill(&n.ModelNamePrefix, "")
	fill(&n.ModelNameSuffix, "")
	fill(&n.APINamePrefix, "")
	fill(&n.APINameSuffix, DefaultResolverSuffix)
	fill(&n.TypeResolverPrefix, "")
	fill(&n.TypeResolverSuffix, DefaultResolverSuffix)
	fill(&n.RequestSuffix, DefaultRequestSuffix)
	fill(&n.ResponseSuffix, DefaultResponseSuffix)
	fill(&n.ResponseProjectionSuffix, DefaultResponseProjectionSuffix)
	fill(&n.ParametrizedInputSuffix, DefaultParametrizedInputSuffix)
	fill(&n.GenerateBuilder, DefaultBuilder)
	fill(&n.GenerateEqualsAndHashCode, DefaultEqualsAndHashCode)
	fill(&n.GenerateToString, DefaultToString)
	fill(&n.GenerateClient, DefaultGenerateClient)
	fill(&n.GenerateImmutableModels, DefaultGenerateImmutableModels)
	fill(&n.GenerateAPIs, DefaultGenerateAPIs)
	fill(&n.GenerateAsyncAPI, DefaultGenerateAsyncAPI)
	fill(&n.GenerateParameterizedFieldsResolvers, DefaultGenerateParameterizedResolver)
	fill(&n.GenerateExtensionFieldsResolvers, DefaultGenerateExtensionResolver)
	fill(&n.GenerateDataFetchingEnvironmentArgumentInAPIs, DefaultGenerateDataFetchingEnv)
	fill(&n.GenerateModelsForRootTypes, DefaultGenerateModelsForRootTypes)
	fill(&n.APINamePrefixStrategy, DefaultAPINamePrefixStrategy)
	fill(&n.APIRootInterfaceStrategy, DefaultAPIRootInterfaceStrategy)
	fill(&n.ModelValidationAnnotation, lang.ValidationAnnotation())
	fill(&n.APIAsyncReturnType, lang.AsyncReturnType())
	fill(&n.APIAsyncReturnListType, "")
	fill(&n.SubscriptionReturnType, "")
	if n.CustomTypesMapping == nil {
		n.CustomTypesMapping = make(map[string]string)
	}
	if n.CustomAnnotationsMapping == nil {
		n.CustomAnnotationsMapping = make(map[string]string)
	}
	if n.DirectiveAnnotationsMapping == nil {
		n.DirectiveAnnotationsMapping = make(map[string]string)
	}
	if *n.GenerateClient {
		n.GenerateToString = ref(true)
	}
	return n
}

// Validate checks that the options of a defaulted config cannot produce
// colliding artifact names.
func (c *MappingConfig) Validate() error {
	prefix, root := val(c.APINamePrefixStrategy), val(c.APIRootInterfaceStrategy)
	if !prefix.Valid() {
		return NewConfigError("APINamePrefixStrategy", prefix, "unknown strategy")
	}
	if !root.Valid() {
		return NewConfigError("APIRootInterfaceStrategy", root, "unknown strategy")
	}
	if root == InterfacePerSchema && prefix == PrefixConstant {
		// "type Query" in several schema files would produce the same interface.
		return NewConflictError("API prefix should not be CONSTANT for INTERFACE_PER_SCHEMA option",
			"APIRootInterfaceStrategy", "APINamePrefixStrategy")
	}
	if val(c.GenerateAPIs) && val(c.GenerateModelsForRootTypes) && prefix == PrefixConstant {
		if equalIgnoreSpaces(val(c.APINamePrefix), val(c.ModelNamePrefix)) &&
			equalIgnoreSpaces(val(c.APINameSuffix), val(c.ModelNameSuffix)) {
			return NewConflictError("either disable APIs generation or set different prefix/suffix for API classes and model classes",
				"APINamePrefix/APINameSuffix", "ModelNamePrefix/ModelNameSuffix")
		}
		if equalIgnoreSpaces(val(c.APINamePrefix), val(c.TypeResolverPrefix)) &&
			equalIgnoreSpaces(val(c.APINameSuffix), val(c.TypeResolverSuffix)) {
			return NewConflictError("either disable APIs generation or set different prefix/suffix for API classes and type resolver classes",
				"APINamePrefix/APINameSuffix", "TypeResolverPrefix/TypeResolverSuffix")
		}
	}
	return nil
}

// Sanitize returns a copy of c with the leading annotation marker removed
// from every annotation string. Templates add the marker back.
func (c *MappingConfig) Sanitize(lang Language) *MappingConfig {
	n := c.Clone()
	marker := lang.AnnotationMarker()
	if n.ModelValidationAnnotation != nil {
		n.ModelValidationAnnotation = ref(trimMarker(*n.ModelValidationAnnotation, marker))
	}
	for k, v := range n.CustomAnnotationsMapping {
		n.CustomAnnotationsMapping[k] = trimMarker(v, marker)
	}
	for k, v := range n.DirectiveAnnotationsMapping {
		n.DirectiveAnnotationsMapping[k] = trimMarker(v, marker)
	}
	return n
}

// Resolve runs the configuration pipeline: combine with override, fill
// defaults, validate and sanitize.
func Resolve(c, override *MappingConfig, lang Language) (*MappingConfig, error) {
	n := c.Combine(override).WithDefaults(lang)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.Sanitize(lang), nil
}

// PutCustomTypeIfAbsent adds a custom type mapping unless the key is mapped.
func (c *MappingConfig) PutCustomTypeIfAbsent(key, value string) {
	if c.CustomTypesMapping == nil {
		c.CustomTypesMapping = make(map[string]string)
	}
	if _, ok := c.CustomTypesMapping[key]; !ok {
		c.CustomTypesMapping[key] = value
	}
}

func trimMarker(s, marker string) string {
	if marker == "" {
		return s
	}
	return strings.TrimPrefix(strings.TrimSpace(s), marker)
}

func equalIgnoreSpaces(a, b string) bool {
	strip := func(s string) string { return strings.Join(strings.Fields(s), "") }
	return strip(a) == strip(b)
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func fill[T any](dst **T, def T) {
	if *dst == nil {
		*dst = &def
	}
}

func ref[T any](v T) *T { return &v }

func val[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func mergeMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

func union(a, b []string) []string {
	for _, s := range b {
		if !slices.Contains(a, s) {
			a = append(a, s)
		}
	}
	return a
}
