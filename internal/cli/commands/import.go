package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Заменить все записи содержимым JSON-файла"
}
func (importCmd) Usage() string { return "import <file>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	resp, body, err := api.Do(ctx, http.MethodPost, api.Endpoint(cfg.ServerURL, "/api/import"), "application/json", f)
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	var ir struct {
		Imported int `json:"imported"`
	}
	if err := json.Unmarshal(body, &ir); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Imported: %d\n", ir.Imported)
	return nil
}

func init() { RegisterCmd(importCmd{}) }
