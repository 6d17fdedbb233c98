package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type statsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Статистика записей по статусам" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/api/stats"))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	var sr statsResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	statuses, err := fetchStatuses(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Всего: %d\n", sr.Total)
	seen := map[string]bool{}
	for _, s := range statuses {
		seen[s.ID] = true
		fmt.Fprintf(Out, "  %s: %d\n", s.Name, sr.ByStatus[s.ID])
	}
	// записи с удалёнными статусами
	for id, n := range sr.ByStatus {
		if !seen[id] {
			fmt.Fprintf(Out, "  %s: %d\n", id, n)
		}
	}
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
