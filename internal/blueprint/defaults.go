package blueprint

// Default returns the record of the amazonqdeveloper blueprint. Every call
// returns a fresh value.
func Default() Options {
	return Options{
		AuthorName:             "HariTripathi_demo",
		PublishingOrganization: "HariTripathi_demo",
		PackageName:            "@amazon-codecatalyst/haritripathi-demo.amazonqdeveloper",
		Name:                   "amazonqdeveloper",
		DisplayName:            "amazonqdeveloper",
		DefaultReleaseBranch:   "main",
		License:                "Apache-2.0",
		ProjenrcTs:             true,
		SampleCode:             false,
		GitHub:                 false,
		ESLint:                 true,
		Jest:                   false,
		NpmignoreEnabled:       true,
		TSConfig: TSConfig{
			CompilerOptions: map[string]interface{}{
				"esModuleInterop": true,
				"noImplicitAny":   false,
			},
		},
		CopyrightOwner: "HariTripathi_demo",
		Deps: []string{
			"projen",
			"@amazon-codecatalyst/blueprints.blueprint",
			"@amazon-codecatalyst/blueprint-component.workflows",
			"@amazon-codecatalyst/blueprint-component.source-repositories",
			"@amazon-codecatalyst/blueprint-component.dev-environments",
			"@amazon-codecatalyst/blueprint-component.environments",
			"@amazon-codecatalyst/blueprint-component.issues",
		},
		Description: "This blueprint creates an empty application.",
		DevDeps: []string{
			"ts-node@^10",
			"typescript",
			"@amazon-codecatalyst/blueprint-util.projen-blueprint",
			"@amazon-codecatalyst/blueprint-util.cli",
			"fast-xml-parser",
		},
		Keywords: []string{
			"first-label",
			"second-label",
		},
		Homepage: "",
	}
}
