package gen

import (
	"errors"
	"maps"
)

// Option configures a MappingConfig.
type Option func(*MappingConfig) error

// WithPackages sets the base, model and API package names.
// Empty model or API packages fall back to the base package.
func WithPackages(base, model, api string) Option {
	return func(c *MappingConfig) error {
		c.PackageName = ref(base)
		c.ModelPackageName = ref(model)
		c.APIPackageName = ref(api)
		return nil
	}
}

// WithModelName sets the prefix and suffix of model classes.
func WithModelName(prefix, suffix string) Option {
	return func(c *MappingConfig) error {
		c.ModelNamePrefix = ref(prefix)
		c.ModelNameSuffix = ref(suffix)
		return nil
	}
}

// WithAPIName sets the prefix and suffix of API interfaces.
func WithAPIName(prefix, suffix string) Option {
	return func(c *MappingConfig) error {
		c.APINamePrefix = ref(prefix)
		c.APINameSuffix = ref(suffix)
		return nil
	}
}

// WithTypeResolverName sets the prefix and suffix of field resolver interfaces.
func WithTypeResolverName(prefix, suffix string) Option {
	return func(c *MappingConfig) error {
		c.TypeResolverPrefix = ref(prefix)
		c.TypeResolverSuffix = ref(suffix)
		return nil
	}
}

// WithAPINamePrefixStrategy sets the API name prefix strategy.
func WithAPINamePrefixStrategy(s APINamePrefixStrategy) Option {
	return func(c *MappingConfig) error {
		if !s.Valid() {
			return NewConfigError("APINamePrefixStrategy", s, "unknown strategy; use CONSTANT, FILE_NAME_AS_PREFIX or FOLDER_NAME_AS_PREFIX")
		}
		c.APINamePrefixStrategy = ref(s)
		return nil
	}
}

// WithAPIRootInterfaceStrategy sets the API root interface strategy.
func WithAPIRootInterfaceStrategy(s APIRootInterfaceStrategy) Option {
	return func(c *MappingConfig) error {
		if !s.Valid() {
			return NewConfigError("APIRootInterfaceStrategy", s, "unknown strategy; use SINGLE_INTERFACE or INTERFACE_PER_SCHEMA")
		}
		c.APIRootInterfaceStrategy = ref(s)
		return nil
	}
}

// WithAPIs enables or disables server API generation.
func WithAPIs(enabled bool) Option {
	return func(c *MappingConfig) error {
		c.GenerateAPIs = ref(enabled)
		return nil
	}
}

// WithClient enables or disables client request/response generation.
func WithClient(enabled bool) Option {
	return func(c *MappingConfig) error {
		c.GenerateClient = ref(enabled)
		return nil
	}
}

// WithModelsForRootTypes enables model generation for root operation types.
func WithModelsForRootTypes(enabled bool) Option {
	return func(c *MappingConfig) error {
		c.GenerateModelsForRootTypes = ref(enabled)
		return nil
	}
}

// WithAsyncAPI enables asynchronous APIs with the given return types.
// An empty listType wraps lists with returnType like any other type.
func WithAsyncAPI(returnType, listType string) Option {
	return func(c *MappingConfig) error {
		if returnType == "" && listType == "" {
			return NewConfigError("APIAsyncReturnType", nil, "at least one async return type is required")
		}
		c.GenerateAsyncAPI = ref(true)
		c.APIAsyncReturnType = ref(returnType)
		c.APIAsyncReturnListType = ref(listType)
		return nil
	}
}

// WithSubscriptionReturnType sets the return type wrapper of subscriptions.
func WithSubscriptionReturnType(t string) Option {
	return func(c *MappingConfig) error {
		c.SubscriptionReturnType = ref(t)
		return nil
	}
}

// WithModelValidationAnnotation sets the annotation added to non-null fields.
// An empty annotation disables it.
func WithModelValidationAnnotation(a string) Option {
	return func(c *MappingConfig) error {
		c.ModelValidationAnnotation = ref(a)
		return nil
	}
}

// WithCustomTypes adds custom type mappings, keyed by "Type" or "Type.field".
func WithCustomTypes(m map[string]string) Option {
	return func(c *MappingConfig) error {
		c.CustomTypesMapping = mergeMap(c.CustomTypesMapping, m)
		return nil
	}
}

// WithCustomAnnotations adds custom annotations, keyed by "Type" or "Type.field".
func WithCustomAnnotations(m map[string]string) Option {
	return func(c *MappingConfig) error {
		c.CustomAnnotationsMapping = mergeMap(c.CustomAnnotationsMapping, m)
		return nil
	}
}

// WithDirectiveAnnotations adds directive annotation templates keyed by directive name.
func WithDirectiveAnnotations(m map[string]string) Option {
	return func(c *MappingConfig) error {
		if c.DirectiveAnnotationsMapping == nil {
			c.DirectiveAnnotationsMapping = make(map[string]string, len(m))
		}
		maps.Copy(c.DirectiveAnnotationsMapping, m)
		return nil
	}
}

// WithFieldResolvers sets the fields that always or never get field resolvers.
func WithFieldResolvers(with, without []string) Option {
	return func(c *MappingConfig) error {
		c.FieldsWithResolvers = union(c.FieldsWithResolvers, with)
		c.FieldsWithoutResolvers = union(c.FieldsWithoutResolvers, without)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *MappingConfig) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *MappingConfig) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new MappingConfig with the given options.
func NewConfig(opts ...Option) (*MappingConfig, error) {
	c := &MappingConfig{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new MappingConfig with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *MappingConfig {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
