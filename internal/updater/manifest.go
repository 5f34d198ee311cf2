package updater

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/x-company/xbuild-mgr/internal/output"
)

// ManifestFile is the name of the package manifest.
const ManifestFile = "package.json"

// PackageManifestUpdater generates <Directory>/package.json. The manifest
// carries project metadata and the yarn task catalog used to build, test,
// debug and release the image.
type PackageManifestUpdater struct {
	req Request
}

// NewPackageManifest validates req and returns a PackageManifestUpdater.
func NewPackageManifest(req Request) (*PackageManifestUpdater, error) {
	if err := req.validate(KindPackageManifest); err != nil {
		return nil, err
	}
	return &PackageManifestUpdater{req: req}, nil
}

// Update implements Updater.
func (u *PackageManifestUpdater) Update(ctx context.Context) (Report, error) {
	if err := u.req.validate(KindPackageManifest); err != nil {
		return Report{}, err
	}

	logger := output.ScopedLogger(u.req.ShortImageName())
	logger.Info("Create a package.json")

	content, err := renderManifest(u.req.ImageName, u.req.ShortImageName())
	if err != nil {
		return Report{}, err
	}

	path := filepath.Join(u.req.Directory, ManifestFile)
	res, err := saveFile(ctx, logger, u.req.Directory, path, "Package Manifest", content, ConfigMode)
	if err != nil {
		return Report{}, err
	}

	return Report{Files: []FileResult{res}}, nil
}

type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Repository      manifestRepo      `json:"repository"`
	Bugs            manifestBugs      `json:"bugs"`
	Homepage        string            `json:"homepage"`
	Keywords        []string          `json:"keywords"`
	Config          manifestConfig    `json:"config"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Snyk            bool              `json:"snyk"`
	Scripts         scripts           `json:"scripts"`
}

type manifestRepo struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type manifestBugs struct {
	URL string `json:"url"`
}

type manifestConfig struct {
	ImageName string `json:"image_name"`
}

type script struct {
	name    string
	command string
}

// scripts keeps declaration order when marshaled, unlike a map.
type scripts []script

// MarshalJSON implements json.Marshaler.
func (s scripts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(sc.name)
		if err != nil {
			return nil, err
		}
		val, err := marshalRaw(sc.command)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v without escaping <, > and &, which shell commands use.
func marshalRaw(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func renderManifest(imageName, shortName string) (string, error) {
	m := manifest{
		Name:        shortName,
		Version:     "0.1.0",
		Description: "<Please describe your Image>",
		Author:      "Firstname Lastname <firstname.lastname@your-domain> (https://your-domain)",
		License:     "MIT",
		Repository: manifestRepo{
			Type: "git",
			URL:  fmt.Sprintf("git@github.com:%s.git", imageName),
		},
		Bugs:            manifestBugs{URL: fmt.Sprintf("https://github.com/%s/issues", imageName)},
		Homepage:        fmt.Sprintf("https://github.com/%s", imageName),
		Keywords:        []string{"docker", shortName},
		Config:          manifestConfig{ImageName: imageName},
		Dependencies:    map[string]string{"snyk": "^1.189.0"},
		DevDependencies: map[string]string{"appversion-mgr": "^0.7.0"},
		Snyk:            true,
		Scripts:         manifestScripts(imageName, shortName),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}
	return buf.String(), nil
}

// manifestScripts returns the yarn task catalog for an image.
func manifestScripts(imageName, shortName string) scripts {
	src := "./src/" + imageName
	build := src + "/build"
	debugContainer := "xbuild_debug_" + shortName
	image := "$npm_package_config_image_name"

	return scripts{
		{"dockerfile:XBUILD_BUILD_DATE", `echo "$(sed -e "s/__XBUILD_BUILD_DATE__/$(date -u +'%Y-%m-%dT%H:%M:%SZ')/g" ` + src + `/Dockerfile.tmpl)" > ./Dockerfile`},
		{"dockerfile:XBUILD_VCS_REF", `echo "$(sed -e "s/__XBUILD_VCS_REF__/$(git rev-parse --short HEAD)/g" ./Dockerfile)" > ./Dockerfile`},
		{"dockerfile:XBUILD_VERSION", `echo "$(sed -e "s/__XBUILD_VERSION__/$npm_package_version/g" ./Dockerfile)" > ./Dockerfile`},
		{"dockerfile:build", "yarn dockerfile:XBUILD_BUILD_DATE && yarn dockerfile:XBUILD_VCS_REF && yarn dockerfile:XBUILD_VERSION"},

		{"docker:clean:dev", "docker image rm -f " + image + ":devcontainer"},
		{"docker:clean:debug", "docker image rm -f " + image + ":debug"},
		{"docker:clean:test", "docker image rm -f " + image + ":test"},
		{"docker:clean:image", "docker image rm -f " + image + ":$npm_package_version"},
		{"docker:clean:latest", "docker image rm -f " + image + ":latest"},

		{"docker:build", "docker build --tag " + image + ":$npm_package_version --force-rm ."},
		{"docker:tag", "docker image tag " + image + ":$npm_package_version " + image + ":latest"},

		{"clean", "docker system prune -f && docker container prune -f && yarn docker:clean:image && yarn docker:clean:latest && yarn docker:clean:dev && yarn docker:clean:debug && yarn docker:clean:test"},
		{"prebuild", "appvmgr update build && yarn dockerfile:build"},
		{"build", "yarn docker:build"},
		{"postbuild", "yarn docker:tag && git add . && git commit -m 'Automatic Build Commit'"},

		{"test", "yarn prebuild && docker-compose -f ./.devcontainer/docker-compose.yml -f ./.devcontainer/docker-compose.test.yml up"},
		{"ci", "yarn prebuild && docker-compose -f ./.ci/docker-compose.yml up"},

		{"snyk-protect", "snyk protect"},
		{"prepublish", "yarn snyk-protect"},

		{"release", "yarn clean && yarn build && appvmgr add-git-tag && git push --tags && git push --all"},

		{"debug:xbuild:backup", "mv " + build + "/xbuild.conf " + build + "/xbuild.conf.org"},
		{"debug:xbuild:restore", "rm -f " + build + "/xbuild.conf && mv " + build + "/xbuild.conf.org " + build + "/xbuild.conf"},
		{"debug:xbuild:copy", "cp -f ./.devcontainer/xbuild.conf " + build + "/xbuild.conf"},

		{"debug:sources:backup", "if test -f " + build + "/sources.list; then mv " + build + "/sources.list " + build + "/sources.list.org; fi"},
		{"debug:sources:restore", "if test -f " + build + "/sources.list.org; then mv " + build + "/sources.list.org " + build + "/sources.list; fi"},
		{"debug:sources:copy", "cp -f ./.devcontainer/sources.list " + build + "/sources.list"},
		{"debug:sources:clean", "rm -f " + build + "/sources.list"},

		{"debug:xbuild:pre", "yarn debug:xbuild:backup && yarn debug:xbuild:copy"},
		{"debug:xbuild:post", "yarn debug:xbuild:restore"},
		{"debug:sources:pre", "yarn debug:sources:backup && yarn debug:sources:copy"},
		{"debug:sources:post", "yarn debug:sources:clean && yarn debug:sources:restore"},

		{"debug:build", "appvmgr update build && docker build --tag " + image + ":debug ."},
		{"debug:run", "docker container run --detach --name " + debugContainer + " --rm --mount type=bind,source=$(pwd)/tests/unit,target=/tests " + image + ":debug"},

		{"predebug", "yarn debug:xbuild:pre && yarn debug:sources:pre && yarn dockerfile:build && yarn debug:build"},
		{"debug", "yarn debug:run && docker container exec -it " + debugContainer + " /bin/bash"},
		{"postdebug", "yarn debug:xbuild:post && yarn debug:sources:post && docker container stop " + debugContainer},
	}
}
