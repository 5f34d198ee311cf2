package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderService(t *testing.T) {
	data := Data{ImageName: "xcompany/mariadb", ShortImageName: "mariadb", ServiceName: "mariadb"}

	for _, name := range ServiceTemplates() {
		t.Run(string(name), func(t *testing.T) {
			content, err := RenderService(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, content)
			assert.True(t, strings.HasSuffix(content, "\n"), "script should end with a newline")
		})
	}
}

func TestRenderService_Shebangs(t *testing.T) {
	tests := []struct {
		name ServiceTemplate
		want string
	}{
		{ServiceBuild, "#!/usr/bin/execlineb -P\n"},
		{ServiceRun, "#!/usr/bin/execlineb -P\n"},
		{ServiceFinish, "#!/usr/bin/execlineb -S0\n"},
		{ServiceShutdown, "#!/usr/bin/execlineb -S0\n"},
		{ServiceAttrs, "# Fixing ownership & permissions\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			content, err := RenderService(tt.name, Data{ServiceName: "svc"})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(content, tt.want), "got %q", content)
		})
	}
}

func TestRenderService_Unknown(t *testing.T) {
	_, err := RenderService("cron", Data{})
	assert.Error(t, err)
}

func TestRenderDevContainer(t *testing.T) {
	data := Data{ImageName: "xcompany/mariadb", ShortImageName: "mariadb"}

	tests := []struct {
		name DevContainerTemplate
		want string
	}{
		{DevContainerConfig, `"name": "xcompany/mariadb"`},
		{DevContainerCompose, "image: xcompany/mariadb:devcontainer"},
		{DevContainerComposeTest, "image: xcompany/mariadb:test"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			content, err := RenderDevContainer(tt.name, data)
			require.NoError(t, err)
			assert.Contains(t, content, tt.want)
			assert.NotContains(t, content, "{{")
		})
	}
}

func TestServiceTemplateContext(t *testing.T) {
	assert.Equal(t, "Fix Attributes", ServiceAttrs.Context())
	assert.Equal(t, "Build", ServiceBuild.Context())
	assert.Equal(t, "custom", ServiceTemplate("custom").Context())
}

func TestTemplateLists(t *testing.T) {
	assert.Len(t, ServiceTemplates(), 8)
	assert.Equal(t, []DevContainerTemplate{DevContainerConfig, DevContainerCompose, DevContainerComposeTest}, DevContainerTemplates())
}
