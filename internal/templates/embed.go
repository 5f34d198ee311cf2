package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed service/*.tmpl
var serviceFS embed.FS

//go:embed devcontainer/*.tmpl
var devContainerFS embed.FS

// RenderService renders a service lifecycle script.
func RenderService(name ServiceTemplate, data Data) (string, error) {
	return render(serviceFS, path.Join("service", string(name)+".tmpl"), data)
}

// RenderDevContainer renders one file of the dev container bundle.
func RenderDevContainer(name DevContainerTemplate, data Data) (string, error) {
	return render(devContainerFS, path.Join("devcontainer", string(name)+".tmpl"), data)
}

func render(fsys fs.FS, name string, data Data) (string, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return sb.String(), nil
}
