package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"VeriUser/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// addRequest повторяет тело POST /api/records.
type addRequest struct {
	Name           string   `json:"name"`
	Username       string   `json:"username"`
	Channel        string   `json:"channel"`
	Age            string   `json:"age"`
	Category       string   `json:"category"`
	Reason         string   `json:"reason"`
	Patents        []string `json:"patents"`
	SocialNetworks string   `json:"socialNetworks"`
	Status         string   `json:"status"`
}

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить запись (-patent можно повторять)"
}
func (addCmd) Usage() string {
	return "add -name <name> -username <u> -channel <c> -age <n> -patent <text> [-patent ...] [-status <id>] [-category <id>] [-reason <text>] [-social <text>]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	var req addRequest
	var patents stringList
	fs := newFlagSet("add")
	fs.StringVar(&req.Name, "name", "", "name")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Channel, "channel", "", "channel")
	fs.StringVar(&req.Age, "age", "", "age")
	fs.StringVar(&req.Category, "category", "", "category id")
	fs.StringVar(&req.Reason, "reason", "", "reason")
	fs.StringVar(&req.SocialNetworks, "social", "", "social networks")
	fs.StringVar(&req.Status, "status", model.StatusVerified, "status id")
	fs.Var(&patents, "patent", "ownership statement (repeatable)")
	rest, err := parseInterspersed(fs, args)
	if err != nil || len(rest) != 0 {
		return ErrUsage
	}
	if req.Name == "" || len(patents) == 0 {
		return ErrUsage
	}
	req.Patents = patents

	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.ServerURL, "/api/records"), req)
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusCreated); err != nil {
		return err
	}
	var r model.Record
	if err := json.Unmarshal(body, &r); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	printRecord(r)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
