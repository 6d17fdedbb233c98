package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"VeriUser/internal/expiry"
	"VeriUser/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type recordCmd struct{}

func (recordCmd) Name() string        { return "record" }
func (recordCmd) Description() string { return "Показать запись целиком" }
func (recordCmd) Usage() string       { return "record <id>" }

func (recordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	resp, body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/api/records/"+url.PathEscape(args[0])))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	var r model.Record
	if err := json.Unmarshal(body, &r); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printRecord(r)
	return nil
}

func printRecord(r model.Record) {
	fmt.Fprintf(Out, "  id:        %s\n", r.ID)
	fmt.Fprintf(Out, "  name:      %s\n", r.Name)
	fmt.Fprintf(Out, "  username:  @%s\n", r.Username)
	fmt.Fprintf(Out, "  channel:   %s\n", r.Channel)
	fmt.Fprintf(Out, "  age:       %s\n", r.Age)
	if r.Category != "" {
		fmt.Fprintf(Out, "  category:  %s\n", r.Category)
	}
	if r.Reason != "" {
		fmt.Fprintf(Out, "  reason:    %s\n", r.Reason)
	}
	if r.SocialNetworks != "" {
		fmt.Fprintf(Out, "  social:    %s\n", r.SocialNetworks)
	}
	fmt.Fprintf(Out, "  status:    %s\n", r.Status)
	for i, p := range r.Patents {
		fmt.Fprintf(Out, "  patent #%d: %s\n", i+1, p)
	}
	fmt.Fprintf(Out, "  created:   %s\n", r.CreatedAt.Format(time.DateTime))
	fmt.Fprintf(Out, "  expires:   %s  %s\n", r.ExpiresAt.Format(time.DateTime), expiryLine(expiry.Evaluate(r.ExpiresAt, time.Now())))
}

func init() { RegisterCmd(recordCmd{}) }
