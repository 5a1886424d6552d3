package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerAttachmentTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_download_attachments",
		mcp.WithDescription("Download all attachments of an issue to a local directory"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("target_dir", mcp.Required(), mcp.Description("Directory to download the files into")),
	), d.handler("jira_download_attachments", false, d.downloadAttachments))

	s.AddTool(mcp.NewTool("jira_add_attachment",
		mcp.WithDescription("Attach a file to an issue, from a local path or inline base64 content"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("file_path", mcp.Description("Local path of the file to attach")),
		mcp.WithString("file_name", mcp.Description("Filename to use; required with content, defaults to the path basename")),
		mcp.WithString("content", mcp.Description("Base64-encoded file content, alternative to file_path")),
	), d.handler("jira_add_attachment", true, d.addAttachment))
}

func (d *Deps) downloadAttachments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	targetDir, err := req.RequireString("target_dir")
	if err != nil {
		return nil, err
	}

	attachments, err := d.Client.Attachments().List(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(attachments) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No attachments on %s.", key)), nil
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating target directory: %w", err)
	}

	downloaded := 0

	for i := range attachments {
		content, err := d.Client.Attachments().Download(ctx, &attachments[i])
		if err != nil {
			return nil, err
		}

		// Strip any path components the server sent along.
		name := filepath.Base(attachments[i].Filename)

		if err := os.WriteFile(filepath.Join(targetDir, name), content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}

		downloaded++
	}

	return mcp.NewToolResultText(fmt.Sprintf("Downloaded %d attachment(s) from %s to %s.\n\n%s",
		downloaded, key, targetDir, formatAttachments(key, attachments))), nil
}

func (d *Deps) addAttachment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	filename, content, err := readAttachmentInput(req)
	if err != nil {
		return nil, err
	}

	created, err := d.Client.Attachments().Upload(ctx, key, filename, content)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Attached %s to %s.\n\n%s",
		filename, key, formatAttachments(key, created))), nil
}

func readAttachmentInput(req mcp.CallToolRequest) (string, []byte, error) {
	filePath := req.GetString("file_path", "")
	inline := req.GetString("content", "")
	filename := req.GetString("file_name", "")

	switch {
	case filePath != "":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", nil, fmt.Errorf("reading file: %w", err)
		}

		if filename == "" {
			filename = filepath.Base(filePath)
		}

		return filename, content, nil

	case inline != "":
		if filename == "" {
			return "", nil, fmt.Errorf("file_name is required when content is given") //nolint:err113 // argument validation
		}

		content, err := base64.StdEncoding.DecodeString(inline)
		if err != nil {
			return "", nil, fmt.Errorf("decoding content: %w", err)
		}

		return filename, content, nil

	default:
		return "", nil, fmt.Errorf("either file_path or content must be given") //nolint:err113 // argument validation
	}
}
