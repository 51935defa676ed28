package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapperSchema = `
"Something with an id"
interface Node { id: ID! }

interface Container { children: [Node] }

union SearchResult = Event | Asset

"""
Status of an event.
Closed events are read only.
"""
enum Status {
  ACTIVE
  "Done"
  CLOSED @deprecated
}

input EventInput {
  name: String = "untitled"
  status: Status = ACTIVE
  tags: [String] = ["a", "b"]
  statuses: [Status!] = []
}

type Event implements Node {
  id: ID!
  "Display name"
  name: String @deprecated(reason: "Use title")
  class: String
  status: Status
  related(first: Int): [Event]
}

type Asset implements Node & Container {
  id: ID!
  children: [Node]
}

extend type Asset {
  owner: String
}
`

func TestTypeModel(t *testing.T) {
	c := newTestContext(t, mapperSchema, WithPackages("com.example", "com.example.model", "com.example.api"))
	m, err := c.TypeModel(mustDefinition(t, c, "Event"))
	require.NoError(t, err)

	assert.Equal(t, "com.example.model", m[KeyPackage])
	assert.Equal(t, "Event", m.ClassName())
	assert.Equal(t, []string{"Node", "SearchResult"}, m[KeyImplements])
	assert.Equal(t, true, m[KeyBuilder])
	assert.Equal(t, false, m[KeyToString])
	assert.Equal(t, testInfo, m[KeyGeneratedInfo])

	fields := m.Fields()
	require.Len(t, fields, 4, "related is served by a field resolver")
	assert.Equal(t, "id", fields[0].Name)
	assert.Equal(t, "String", fields[0].Type)
	assert.Equal(t, []string{"javax.validation.constraints.NotNull"}, fields[0].Annotations)

	assert.Equal(t, []string{"Display name"}, fields[1].JavaDoc)
	assert.True(t, fields[1].Deprecated)
	assert.Equal(t, "Use title", fields[1].DeprecationReason)

	assert.Equal(t, "Class", fields[2].Name)
	assert.Equal(t, "class", fields[2].OriginalName)
	assert.Equal(t, "Status", fields[3].Type)
}

func TestTypeModelInterfaceFields(t *testing.T) {
	c := newTestContext(t, `
interface Node { id: ID! createdAt: String }
type Event implements Node { id: ID! name: String }
`)
	m, err := c.TypeModel(mustDefinition(t, c, "Event"))
	require.NoError(t, err)

	var names []string
	for _, f := range m.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "name", "createdAt"}, names)
}

func TestInputModel(t *testing.T) {
	c := newTestContext(t, mapperSchema)
	m, err := c.InputModel(mustDefinition(t, c, "EventInput"))
	require.NoError(t, err)

	fields := m.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, `"untitled"`, fields[0].DefaultValue)
	assert.Equal(t, "Status.ACTIVE", fields[1].DefaultValue)
	assert.Equal(t, `java.util.Arrays.asList("a", "b")`, fields[2].DefaultValue)
	assert.Equal(t, "java.util.Collections.emptyList()", fields[3].DefaultValue)
	assert.Equal(t, "java.util.List<Status>", fields[3].Type)
}

func TestInputModelCoercedListDefault(t *testing.T) {
	c := newTestContext(t, `
enum Status { ACTIVE }
input Filter { statuses: [Status] = ACTIVE }
`)
	m, err := c.InputModel(mustDefinition(t, c, "Filter"))
	require.NoError(t, err)

	require.Len(t, m.Fields(), 1)
	assert.Equal(t, "java.util.List<Status>", m.Fields()[0].Type)
	assert.Equal(t, "java.util.Arrays.asList(Status.ACTIVE)", m.Fields()[0].DefaultValue)
}

func TestInterfaceModel(t *testing.T) {
	c := newTestContext(t, mapperSchema)
	m, err := c.InterfaceModel(mustDefinition(t, c, "Container"))
	require.NoError(t, err)

	assert.Equal(t, "Container", m.ClassName())
	assert.NotContains(t, m, KeyBuilder)
	require.Len(t, m.Fields(), 1)
	assert.Equal(t, "java.util.List<? extends Node>", m.Fields()[0].Type)

	node, err := c.InterfaceModel(mustDefinition(t, c, "Node"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Something with an id"}, node[KeyJavaDoc])
}

func TestEnumModel(t *testing.T) {
	c := newTestContext(t, mapperSchema)
	m := c.EnumModel(mustDefinition(t, c, "Status"))

	assert.Equal(t, []string{"Status of an event.", "Closed events are read only."}, m[KeyJavaDoc])
	values, ok := m[KeyEnumValues].([]*EnumValue)
	require.True(t, ok)
	require.Len(t, values, 2)
	assert.Equal(t, "ACTIVE", values[0].Name)
	assert.False(t, values[0].Deprecated)
	assert.Equal(t, []string{"Done"}, values[1].JavaDoc)
	assert.True(t, values[1].Deprecated)
	assert.Equal(t, "No longer supported", values[1].DeprecationReason)
}

func TestUnionModel(t *testing.T) {
	c := newTestContext(t, mapperSchema, WithModelName("", "TO"))
	m := c.UnionModel(mustDefinition(t, c, "SearchResult"))

	assert.Equal(t, "SearchResultTO", m.ClassName())
	assert.Equal(t, []string{}, m[KeyImplements])
}

func TestHasResolver(t *testing.T) {
	schema := `
type Event { id: ID related(first: Int): [Event] owner: Person }
type Person { name: String }
extend type Event { score: Int }
`
	tests := []struct {
		name  string
		opts  []Option
		field string
		want  bool
	}{
		{"plain field", nil, "id", false},
		{"parameterized field", nil, "related", true},
		{"parameterized resolvers disabled", []Option{func(c *MappingConfig) error {
			c.GenerateParameterizedFieldsResolvers = ref(false)
			return nil
		}}, "related", false},
		{"extension field", nil, "score", false},
		{"extension resolvers enabled", []Option{func(c *MappingConfig) error {
			c.GenerateExtensionFieldsResolvers = ref(true)
			return nil
		}}, "score", true},
		{"nested type listed", []Option{WithFieldResolvers([]string{"Person"}, nil)}, "owner", true},
		{"field listed", []Option{WithFieldResolvers([]string{"Event.id"}, nil)}, "id", true},
		{"parent excluded", []Option{WithFieldResolvers(nil, []string{"Event"})}, "related", false},
		{"field excluded", []Option{WithFieldResolvers([]string{"Event.related"}, []string{"Event.related"})}, "related", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, schema, tt.opts...)
			event := mustDefinition(t, c, "Event")
			assert.Equal(t, tt.want, c.HasResolver(mustField(t, event, tt.field), "Event"))
		})
	}
}

func TestFieldResolverModel(t *testing.T) {
	c := newTestContext(t, mapperSchema, WithPackages("", "com.example.model", "com.example.api"))

	m, ok, err := c.FieldResolverModel(mustDefinition(t, c, "Event"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "EventResolver", m.ClassName())
	assert.Equal(t, "com.example.api", m[KeyPackage])
	assert.Equal(t, []string{"com.example.model"}, m[KeyImports])

	ops := m.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "related", ops[0].Name)
	assert.Equal(t, "java.util.List<Event>", ops[0].Type)
	require.Len(t, ops[0].Parameters, 2)
	assert.Equal(t, &Parameter{Name: "event", OriginalName: "event", Type: "Event", Annotations: []string{}}, ops[0].Parameters[0])
	assert.Equal(t, "first", ops[0].Parameters[1].Name)
	assert.Equal(t, "Integer", ops[0].Parameters[1].Type)

	_, ok, err = c.FieldResolverModel(mustDefinition(t, c, "Asset"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProjectionModel(t *testing.T) {
	c := newTestContext(t, mapperSchema, WithClient(true))

	t.Run("type", func(t *testing.T) {
		m := c.ProjectionModel(mustDefinition(t, c, "Event"))
		fields, ok := m[KeyFields].([]*ProjectionField)
		require.True(t, ok)

		assert.Equal(t, "EventResponseProjection", m.ClassName())
		require.Len(t, fields, 6)
		assert.Equal(t, &ProjectionField{Name: "id", MethodName: "id"}, fields[0])
		assert.Equal(t, &ProjectionField{Name: "class", MethodName: "Class"}, fields[2])
		assert.Equal(t, &ProjectionField{
			Name:                       "related",
			MethodName:                 "related",
			Type:                       "EventResponseProjection",
			ParametrizedInputClassName: "EventRelatedParametrizedInput",
		}, fields[4])
		assert.Equal(t, &ProjectionField{Name: "__typename", MethodName: "typename"}, fields[5])
	})

	t.Run("union", func(t *testing.T) {
		m := c.ProjectionModel(mustDefinition(t, c, "SearchResult"))
		fields := m[KeyFields].([]*ProjectionField)

		assert.Equal(t, []*ProjectionField{
			{Name: "...on Event", MethodName: "onEvent", Type: "EventResponseProjection"},
			{Name: "...on Asset", MethodName: "onAsset", Type: "AssetResponseProjection"},
			{Name: "__typename", MethodName: "typename"},
		}, fields)
	})

	t.Run("interface typed field", func(t *testing.T) {
		m := c.ProjectionModel(mustDefinition(t, c, "Asset"))
		fields := m[KeyFields].([]*ProjectionField)

		require.Len(t, fields, 4)
		assert.Equal(t, "NodeResponseProjection", fields[1].Type)
		assert.Equal(t, "", fields[2].Type)
	})
}

func TestClientModels(t *testing.T) {
	c := newTestContext(t, `
type Query { events(first: Int!, status: String = "open"): [Event] }
type Event { id: ID }
`, WithClient(true))
	query := mustDefinition(t, c, "Query")
	f := mustField(t, query, "events")

	req, err := c.RequestModel(query, f)
	require.NoError(t, err)
	assert.Equal(t, "EventsQueryRequest", req.ClassName())
	assert.Equal(t, "events", req[KeyOperationName])
	assert.Equal(t, "QUERY", req[KeyOperationType])
	assert.Equal(t, true, req[KeyToString])
	require.Len(t, req.Fields(), 2)
	assert.Equal(t, "Integer", req.Fields()[0].Type)
	assert.Equal(t, []string{"javax.validation.constraints.NotNull"}, req.Fields()[0].Annotations)
	assert.Equal(t, `"open"`, req.Fields()[1].DefaultValue)

	resp, err := c.ResponseModel(query, f)
	require.NoError(t, err)
	assert.Equal(t, "EventsQueryResponse", resp.ClassName())
	assert.Equal(t, "java.util.List<Event>", resp[KeyReturnType])

	event := mustDefinition(t, c, "Event")
	input, err := c.ParametrizedInputModel(event, f)
	require.NoError(t, err)
	assert.Equal(t, "EventEventsParametrizedInput", input.ClassName())
	assert.Len(t, input.Fields(), 2)
}
