package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPackages(t *testing.T) {
	c := &MappingConfig{}
	err := WithPackages("com.example", "com.example.model", "")(c)

	require.NoError(t, err)
	assert.Equal(t, "com.example", *c.PackageName)
	assert.Equal(t, "com.example.model", *c.ModelPackageName)
	assert.Equal(t, "", *c.APIPackageName)
}

func TestWithAPINamePrefixStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy APINamePrefixStrategy
		wantErr  bool
	}{
		{"constant", PrefixConstant, false},
		{"file name", PrefixFileName, false},
		{"folder name", PrefixFolderName, false},
		{"unknown", "PER_TYPE", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &MappingConfig{}
			err := WithAPINamePrefixStrategy(tt.strategy)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				assert.Nil(t, c.APINamePrefixStrategy)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.strategy, *c.APINamePrefixStrategy)
			}
		})
	}
}

func TestWithAPIRootInterfaceStrategy(t *testing.T) {
	c := &MappingConfig{}
	require.NoError(t, WithAPIRootInterfaceStrategy(InterfacePerSchema)(c))
	assert.Equal(t, InterfacePerSchema, *c.APIRootInterfaceStrategy)

	err := WithAPIRootInterfaceStrategy("PER_FOLDER")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithAsyncAPI(t *testing.T) {
	t.Run("sets return types", func(t *testing.T) {
		c := &MappingConfig{}
		err := WithAsyncAPI("reactor.core.publisher.Mono", "reactor.core.publisher.Flux")(c)

		require.NoError(t, err)
		assert.True(t, *c.GenerateAsyncAPI)
		assert.Equal(t, "reactor.core.publisher.Mono", *c.APIAsyncReturnType)
		assert.Equal(t, "reactor.core.publisher.Flux", *c.APIAsyncReturnListType)
	})

	t.Run("requires a return type", func(t *testing.T) {
		c := &MappingConfig{}
		err := WithAsyncAPI("", "")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Nil(t, c.GenerateAsyncAPI)
	})
}

func TestWithCustomTypes(t *testing.T) {
	c := &MappingConfig{}
	require.NoError(t, WithCustomTypes(map[string]string{"DateTime": "java.time.ZonedDateTime"})(c))
	require.NoError(t, WithCustomTypes(map[string]string{"Event.id": "java.util.UUID"})(c))

	assert.Equal(t, map[string]string{
		"DateTime": "java.time.ZonedDateTime",
		"Event.id": "java.util.UUID",
	}, c.CustomTypesMapping)
}

func TestWithFieldResolvers(t *testing.T) {
	c := &MappingConfig{}
	require.NoError(t, WithFieldResolvers([]string{"Event", "Event.tags"}, []string{"Asset"})(c))
	require.NoError(t, WithFieldResolvers([]string{"Event"}, nil)(c))

	assert.Equal(t, []string{"Event", "Event.tags"}, c.FieldsWithResolvers)
	assert.Equal(t, []string{"Asset"}, c.FieldsWithoutResolvers)
}

func TestApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		c := &MappingConfig{}
		err := c.Apply(
			WithAPINamePrefixStrategy("bad"),
			WithClient(true),
		)

		require.Error(t, err)
		assert.Nil(t, c.GenerateClient)
	})

	t.Run("ApplyAll collects errors", func(t *testing.T) {
		c := &MappingConfig{}
		err := c.ApplyAll(
			WithAPINamePrefixStrategy("bad"),
			WithClient(true),
			WithAsyncAPI("", ""),
		)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "APINamePrefixStrategy")
		assert.Contains(t, err.Error(), "APIAsyncReturnType")
		assert.True(t, *c.GenerateClient)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("applies options", func(t *testing.T) {
		c, err := NewConfig(WithAPIs(false), WithModelName("", "TO"))

		require.NoError(t, err)
		assert.False(t, *c.GenerateAPIs)
		assert.Equal(t, "TO", *c.ModelNameSuffix)
		assert.Nil(t, c.GenerateClient)
	})

	t.Run("MustNewConfig panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithAPIRootInterfaceStrategy("bad"))
		})
	})
}
