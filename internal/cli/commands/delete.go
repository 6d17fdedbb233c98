package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить запись" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	resp, body, err := api.Delete(ctx, api.Endpoint(cfg.ServerURL, "/api/records/"+url.PathEscape(args[0])))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusNoContent); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %s\n", args[0])
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
