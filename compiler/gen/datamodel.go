package gen

// ArtifactKind identifies the kind of a generated artifact. Renderers
// select templates by kind.
type ArtifactKind string

// Artifact kinds in the order the generator may produce them.
const (
	KindType               ArtifactKind = "type"
	KindFieldResolver      ArtifactKind = "fieldResolver"
	KindRootAPI            ArtifactKind = "rootApi"
	KindAPI                ArtifactKind = "api"
	KindRequest            ArtifactKind = "request"
	KindResponse           ArtifactKind = "response"
	KindResponseProjection ArtifactKind = "responseProjection"
	KindParametrizedInput  ArtifactKind = "parametrizedInput"
	KindInput              ArtifactKind = "input"
	KindEnum               ArtifactKind = "enum"
	KindUnion              ArtifactKind = "union"
	KindInterface          ArtifactKind = "interface"
)

// ArtifactKinds returns all artifact kinds.
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{
		KindType, KindFieldResolver, KindRootAPI, KindAPI, KindRequest, KindResponse,
		KindResponseProjection, KindParametrizedInput, KindInput, KindEnum, KindUnion, KindInterface,
	}
}

// DataModel is the render-ready representation of one artifact.
// Keys are taken from the Key constants; collections are never nil.
type DataModel map[string]any

// Data model keys.
const (
	KeyPackage           = "package"
	KeyImports           = "imports"
	KeyClassName         = "className"
	KeyImplements        = "implements"
	KeyFields            = "fields"
	KeyEnumValues        = "enumValues"
	KeyOperations        = "operations"
	KeyAnnotations       = "annotations"
	KeyJavaDoc           = "javaDoc"
	KeyBuilder           = "builder"
	KeyEqualsAndHashCode = "equalsAndHashCode"
	KeyToString          = "toString"
	KeyImmutableModels   = "immutableModels"
	KeyOperationName     = "operationName"
	KeyOperationType     = "operationType"
	KeyReturnType        = "returnType"
	KeyGeneratedInfo     = "generatedInfo"
)

// ClassName returns the class name of the model.
func (m DataModel) ClassName() string {
	s, _ := m[KeyClassName].(string)
	return s
}

// Fields returns the fields of the model, or nil.
func (m DataModel) Fields() []*Field {
	fs, _ := m[KeyFields].([]*Field)
	return fs
}

// Operations returns the operations of the model, or nil.
func (m DataModel) Operations() []*Operation {
	ops, _ := m[KeyOperations].([]*Operation)
	return ops
}

// Artifact pairs an artifact kind with its data model.
type Artifact struct {
	Kind  ArtifactKind
	Name  string
	Model DataModel
}

// Field is a field of a type, input, interface, request or parametrized input.
type Field struct {
	// Name is the target identifier, escaped if reserved.
	Name string
	// OriginalName is the GraphQL field name.
	OriginalName      string
	Type              string
	Annotations       []string
	DefaultValue      string
	JavaDoc           []string
	Deprecated        bool
	DeprecationReason string
}

// Parameter is a parameter of an operation.
type Parameter struct {
	Name         string
	OriginalName string
	Type         string
	Annotations  []string
}

// Operation is a method of an API or field resolver interface.
type Operation struct {
	Name              string
	OriginalName      string
	Type              string
	Annotations       []string
	Parameters        []*Parameter
	JavaDoc           []string
	Deprecated        bool
	DeprecationReason string
}

// EnumValue is a constant of an enum.
type EnumValue struct {
	Name              string
	OriginalName      string
	JavaDoc           []string
	Deprecated        bool
	DeprecationReason string
}

// ProjectionField is a selectable field of a response projection.
type ProjectionField struct {
	Name       string
	MethodName string
	// Type is the projection class of composite fields, empty for leaves.
	Type string
	// ParametrizedInputClassName is set for fields with arguments.
	ParametrizedInputClassName string
}

// GeneratedInfo stamps generated artifacts.
type GeneratedInfo struct {
	Generator string
	Version   string
	Date      string
}
