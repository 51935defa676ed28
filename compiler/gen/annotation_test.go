package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqlcodegen/compiler/load"
)

const annotationSchema = `
scalar DateTime
type Event @entity {
  id: ID!
  name: String
  tags: [String!]!
  labels: [String!]
  at: DateTime! @size(min: 1)
}
`

func TestResolveAnnotations(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		field string
		want  []string
	}{
		{
			name:  "non-null scalar",
			field: "id",
			want:  []string{"javax.validation.constraints.NotNull"},
		},
		{
			name:  "nullable scalar",
			field: "name",
			want:  []string{},
		},
		{
			name:  "non-null list",
			field: "tags",
			want:  []string{"javax.validation.constraints.NotNull"},
		},
		{
			name:  "nullable list of non-null",
			field: "labels",
			want:  []string{"javax.validation.constraints.NotNull"},
		},
		{
			name:  "blank validation annotation",
			opts:  []Option{WithModelValidationAnnotation("  ")},
			field: "id",
			want:  []string{},
		},
		{
			name:  "field custom annotation",
			opts:  []Option{WithCustomAnnotations(map[string]string{"Event.name": "@com.example.Name"})},
			field: "name",
			want:  []string{"com.example.Name"},
		},
		{
			name: "field custom annotation wins over type",
			opts: []Option{WithCustomAnnotations(map[string]string{
				"Event.at": "@com.example.Field",
				"DateTime": "@com.example.Type",
			})},
			field: "at",
			want:  []string{"javax.validation.constraints.NotNull", "com.example.Field"},
		},
		{
			name:  "type custom annotation",
			opts:  []Option{WithCustomAnnotations(map[string]string{"DateTime": "@com.example.Type"})},
			field: "at",
			want:  []string{"javax.validation.constraints.NotNull", "com.example.Type"},
		},
		{
			name: "emission order",
			opts: []Option{
				WithCustomAnnotations(map[string]string{"Event.at": "@com.example.Field"}),
				WithDirectiveAnnotations(map[string]string{"size": "@Size(min={{min}})"}),
			},
			field: "at",
			want:  []string{"javax.validation.constraints.NotNull", "com.example.Field", "Size(min=1)"},
		},
		{
			name: "duplicates are kept",
			opts: []Option{
				WithModelValidationAnnotation("@NotNull"),
				WithCustomAnnotations(map[string]string{"Event.id": "@NotNull"}),
			},
			field: "id",
			want:  []string{"NotNull", "NotNull"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, annotationSchema, tt.opts...)
			f := mustField(t, mustDefinition(t, c, "Event"), tt.field)

			got, err := c.ResolveAnnotations(f.Type, f.Name, "Event", f.Directives)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAnnotationsShapeError(t *testing.T) {
	c := newTestContext(t, annotationSchema)

	_, err := c.ResolveAnnotations(load.NonNull(nil), "id", "Event", nil)
	require.Error(t, err)
	assert.True(t, IsTypeShapeError(err))
}

func TestTypeAnnotations(t *testing.T) {
	c := newTestContext(t, annotationSchema,
		WithCustomAnnotations(map[string]string{"Event": "@javax.persistence.Entity"}),
		WithDirectiveAnnotations(map[string]string{"entity": "@com.example.Entity"}),
	)
	event := mustDefinition(t, c, "Event")

	assert.Equal(t, []string{"javax.persistence.Entity", "com.example.Entity"}, c.TypeAnnotations(event.Name, event.Directives()))
	assert.Equal(t, []string{}, c.TypeAnnotations("Other", nil))
}
