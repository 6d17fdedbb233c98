package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"VeriUser/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func fetchStatuses(ctx context.Context, cfg *config.Config) ([]model.StatusDefinition, error) {
	resp, body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/api/statuses"))
	if err != nil {
		return nil, err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return nil, err
	}
	var list []model.StatusDefinition
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return list, nil
}

type statusesCmd struct{}

func (statusesCmd) Name() string        { return "statuses" }
func (statusesCmd) Description() string { return "Показать справочник статусов" }
func (statusesCmd) Usage() string       { return "statuses" }

func (statusesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := fetchStatuses(ctx, cfg)
	if err != nil {
		return err
	}
	for _, s := range list {
		mark := ""
		if model.IsReservedStatus(s.ID) {
			mark = " (system)"
		}
		fmt.Fprintf(Out, "- %s  %s  %s%s\n", s.ID, s.Name, s.Color, mark)
	}
	return nil
}

type statusAddCmd struct{}

func (statusAddCmd) Name() string        { return "status-add" }
func (statusAddCmd) Description() string { return "Добавить статус" }
func (statusAddCmd) Usage() string       { return "status-add <name> [color]" }

func (statusAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return ErrUsage
	}
	req := map[string]string{"name": args[0]}
	if len(args) == 2 {
		req["color"] = args[1]
	}
	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.ServerURL, "/api/statuses"), req)
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusCreated); err != nil {
		return err
	}
	var def model.StatusDefinition
	if err := json.Unmarshal(body, &def); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created status %s  %s  %s\n", def.ID, def.Name, def.Color)
	return nil
}

type statusDeleteCmd struct{}

func (statusDeleteCmd) Name() string { return "status-delete" }
func (statusDeleteCmd) Description() string {
	return "Удалить статус (verified и fraud удалить нельзя)"
}
func (statusDeleteCmd) Usage() string { return "status-delete <id>" }

func (statusDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	resp, body, err := api.Delete(ctx, api.Endpoint(cfg.ServerURL, "/api/statuses/"+url.PathEscape(args[0])))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusNoContent); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted status: %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(statusesCmd{})
	RegisterCmd(statusAddCmd{})
	RegisterCmd(statusDeleteCmd{})
}
