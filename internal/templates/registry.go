package templates

// serviceContexts maps each service template to the label used in log output.
var serviceContexts = map[ServiceTemplate]string{
	ServiceBuild:    "Build",
	ServiceRun:      "Run",
	ServiceHealth:   "Health",
	ServiceFinish:   "Finish",
	ServiceAttrs:    "Fix Attributes",
	ServiceInit:     "Init",
	ServiceLog:      "Log",
	ServiceShutdown: "Shutdown",
}

// ServiceTemplates returns all service templates in generation order.
func ServiceTemplates() []ServiceTemplate {
	return []ServiceTemplate{
		ServiceBuild,
		ServiceRun,
		ServiceHealth,
		ServiceFinish,
		ServiceAttrs,
		ServiceInit,
		ServiceLog,
		ServiceShutdown,
	}
}

// Context returns the human label of a service template.
func (t ServiceTemplate) Context() string {
	if c, ok := serviceContexts[t]; ok {
		return c
	}
	return string(t)
}

// DevContainerTemplates returns the dev container bundle in generation order.
func DevContainerTemplates() []DevContainerTemplate {
	return []DevContainerTemplate{
		DevContainerConfig,
		DevContainerCompose,
		DevContainerComposeTest,
	}
}
