package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

const fallbackExportName = "veriuser_export.json"

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Выгрузить все записи в JSON-файл" }
func (exportCmd) Usage() string       { return "export [file]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	resp, body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/api/export"))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	path := fallbackExportName
	if len(args) == 1 {
		path = args[0]
	} else if name := attachmentName(resp.Header.Get("Content-Disposition")); name != "" {
		path = name
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported to %s (%d bytes)\n", path, len(body))
	return nil
}

// attachmentName достаёт имя файла из Content-Disposition без путей.
func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func init() { RegisterCmd(exportCmd{}) }
