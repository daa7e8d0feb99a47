package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/registry"
	"github.com/aretw0/switchboard/pkg/schema"
)

type readFileArgs struct {
	FilePath string `mapstructure:"file_path"`
}

func readFile(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "read_file",
			Description: "Read a text file from your local machine",
			Schema: schema.Schema{
				{Key: "file_path", Kind: schema.String, Required: true, Description: "Path to the text file you want to read"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in readFileArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error reading file: %v", err)
			}

			path, err := deps.Files.Expand(in.FilePath)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error reading file: %v", err)
			}

			info, err := deps.Files.Stat(path)
			if err != nil {
				return "", readFileError(path, err)
			}
			if info.IsDir {
				return "", domain.Errf(domain.KindWrongType, "Error: '%s' is not a file", path)
			}

			content, err := deps.Files.ReadText(path)
			if err != nil {
				return "", readFileError(path, err)
			}
			return fmt.Sprintf("Content of '%s':\n\n%s", path, content), nil
		},
	}
}

// readFileError renders filesystem failures with the expanded path.
func readFileError(path string, err error) error {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return domain.Errf(domain.KindNotFound, "Error: File '%s' does not exist", path)
	case domain.KindPermissionDenied:
		return domain.Errf(domain.KindPermissionDenied, "Error: Permission denied reading '%s'", path)
	case domain.KindDecodeFailure:
		return domain.Errf(domain.KindDecodeFailure,
			"Error: Cannot read '%s' - file appears to be binary or not UTF-8 encoded", path)
	default:
		return domain.Errf(domain.KindBackendFailure, "Error reading file: %v", err)
	}
}

type listFilesArgs struct {
	DirectoryPath string `mapstructure:"directory_path"`
}

func listFiles(deps Deps) registry.Registration {
	return registry.Registration{
		Definition: domain.ToolDefinition{
			Name:        "list_files",
			Description: "List files in a directory",
			Schema: schema.Schema{
				{Key: "directory_path", Kind: schema.String, Default: "~",
					Description: "Path to the directory to list (defaults to home directory)"},
			},
		},
		Handler: func(ctx context.Context, args schema.Validated) (string, error) {
			var in listFilesArgs
			if err := decodeArgs(args, &in); err != nil {
				return "", domain.Errf(domain.KindDecodeFailure, "Error listing directory: %v", err)
			}

			path, err := deps.Files.Expand(in.DirectoryPath)
			if err != nil {
				return "", domain.Errf(domain.KindBackendFailure, "Error listing directory: %v", err)
			}

			info, err := deps.Files.Stat(path)
			if err != nil {
				return "", listFilesError(path, err)
			}
			if !info.IsDir {
				return "", domain.Errf(domain.KindWrongType, "Error: '%s' is not a directory", path)
			}

			entries, err := deps.Files.List(path)
			if err != nil {
				return "", listFilesError(path, err)
			}

			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.IsDir {
					lines = append(lines, fmt.Sprintf("[DIR] %s/", e.Name))
				} else {
					lines = append(lines, fmt.Sprintf("[FILE] %s", e.Name))
				}
			}
			return fmt.Sprintf("Contents of '%s':\n\n%s", path, strings.Join(lines, "\n")), nil
		},
	}
}

func listFilesError(path string, err error) error {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return domain.Errf(domain.KindNotFound, "Error: Directory '%s' does not exist", path)
	case domain.KindPermissionDenied:
		return domain.Errf(domain.KindPermissionDenied, "Error: Permission denied accessing '%s'", path)
	default:
		return domain.Errf(domain.KindBackendFailure, "Error listing directory: %v", err)
	}
}
