// Package templates provides the embedded payloads for generated service
// scripts and dev container files.
package templates

// Data holds the values substituted into templates.
type Data struct {
	// ImageName is the full image name, possibly namespaced (e.g. "xcompany/mariadb").
	ImageName string

	// ShortImageName is the last segment of ImageName (e.g. "mariadb").
	ShortImageName string

	// ServiceName is the name of the service being generated.
	ServiceName string
}

// ServiceTemplate names one lifecycle script of a service.
type ServiceTemplate string

const (
	ServiceBuild    ServiceTemplate = "build"
	ServiceRun      ServiceTemplate = "run"
	ServiceHealth   ServiceTemplate = "health"
	ServiceFinish   ServiceTemplate = "finish"
	ServiceAttrs    ServiceTemplate = "attrs"
	ServiceInit     ServiceTemplate = "init"
	ServiceLog      ServiceTemplate = "log"
	ServiceShutdown ServiceTemplate = "shutdown"
)

// DevContainerTemplate names one file of the dev container bundle.
// The value is the generated file name.
type DevContainerTemplate string

const (
	DevContainerConfig      DevContainerTemplate = "devcontainer.json"
	DevContainerCompose     DevContainerTemplate = "docker-compose.yml"
	DevContainerComposeTest DevContainerTemplate = "docker-compose.test.yml"
)
