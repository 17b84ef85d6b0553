package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lithammer/shortuuid/v3"
	"github.com/pkg/errors"
)

// containerBuilder runs the tool-specific install inside an AWS SAM build
// image matching the target runtime and architecture, so the produced
// artifacts are binary-compatible with Lambda regardless of the host.
type containerBuilder struct {
	params Params
	tool   string
}

var _ Builder = &containerBuilder{}

func NewContainerBuilder(params Params, tool string) *containerBuilder {
	return &containerBuilder{params: params, tool: tool}
}

func (b *containerBuilder) imageURI() string {
	tag := "latest-x86_64"
	if b.params.Arch == "arm64" {
		tag = "latest-arm64"
	}

	return fmt.Sprintf("public.ecr.aws/sam/build-python%s:%s", pyVersion(b.params.Runtime), tag)
}

func (b *containerBuilder) platform() string {
	if b.params.Arch == "arm64" {
		return "linux/arm64"
	}

	return "linux/amd64"
}

func (b *containerBuilder) containerName() string {
	return fmt.Sprintf("layerforge-build-%s", shortuuid.New())
}

// script is the shell command executed inside the container. Paths are
// container-side: the project root is bind-mounted at /var/task.
func (b *containerBuilder) script() (string, error) {
	const task = "/var/task"
	buildDir := task + "/build/lambda/layer"
	repoDir := buildDir + "/repo"
	pythonDir := buildDir + "/artifacts/python"

	setup := fmt.Sprintf("set -e; rm -rf %s; mkdir -p %s %s", buildDir, repoDir, pythonDir)

	switch b.tool {
	case ToolPip:
		return fmt.Sprintf(
			"%s; pip install -r %s/requirements.txt -t %s",
			setup, task, pythonDir,
		), nil
	case ToolPoetry:
		sitePackages := repoDir + "/.venv/lib/" + b.params.Runtime + "/site-packages"
		return fmt.Sprintf(
			"%s; cp %s/pyproject.toml %s/poetry.lock %s;"+
				" pip install poetry;"+
				" cd %s;"+
				" poetry config virtualenvs.in-project true --local;"+
				" poetry install --no-root;"+
				" mv %s/* %s/",
			setup, task, task, repoDir, repoDir, sitePackages, pythonDir,
		), nil
	case ToolUV:
		sitePackages := repoDir + "/.venv/lib/" + b.params.Runtime + "/site-packages"
		return fmt.Sprintf(
			"%s; cp %s/pyproject.toml %s/uv.lock %s;"+
				" pip install uv;"+
				" cd %s;"+
				" uv sync --frozen --no-dev --no-install-project;"+
				" mv %s/* %s/",
			setup, task, task, repoDir, repoDir, sitePackages, pythonDir,
		), nil
	default:
		return "", errors.Errorf("unknown build tool %q", b.tool)
	}
}

// DockerRunArgs exposes the docker invocation for logging and tests.
func (b *containerBuilder) DockerRunArgs() ([]string, error) {
	script, err := b.script()
	if err != nil {
		return nil, err
	}

	args := []string{
		"run",
		"--rm",
		"--name", b.containerName(),
		"--platform", b.platform(),
		"--mount", fmt.Sprintf("type=bind,source=%s,target=/var/task", b.params.Layout.ProjectRoot()),
	}

	if creds := b.params.Credentials; creds != nil {
		switch b.tool {
		case ToolPip:
			args = append(args, "--env", "PIP_INDEX_URL="+creds.IndexURL)
		case ToolPoetry:
			args = append(args,
				"--env", "POETRY_HTTP_BASIC_"+creds.envName()+"_USERNAME="+creds.Username,
				"--env", "POETRY_HTTP_BASIC_"+creds.envName()+"_PASSWORD="+creds.Password,
			)
		case ToolUV:
			args = append(args,
				"--env", "UV_INDEX_"+creds.envName()+"_USERNAME="+creds.Username,
				"--env", "UV_INDEX_"+creds.envName()+"_PASSWORD="+creds.Password,
			)
		}
	}

	args = append(args, b.imageURI(), "sh", "-c", script)

	return args, nil
}

func (b *containerBuilder) Build(ctx context.Context) error {
	logger := hclog.FromContext(ctx)

	args, err := b.DockerRunArgs()
	if err != nil {
		return err
	}

	logger.Info("Building layer artifacts in container",
		"tool", b.tool, "image", b.imageURI(), "platform", b.platform())
	logger.Debug("Running docker", "args", strings.Join(args, " "))

	b.params.Exec.SetDir(b.params.Layout.ProjectRoot())

	code, err := b.params.Exec.Run("docker", args...)
	return errors.Wrapf(err, "docker run exited with code %d", code)
}
