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

type recordsCmd struct{}

func (recordsCmd) Name() string { return "records" }
func (recordsCmd) Description() string {
	return "Показать записи (поиск по username, фильтр по статусу)"
}
func (recordsCmd) Usage() string { return "records [query] [-status <id>]" }

func (recordsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("records")
	status := fs.String("status", "all", "status id or all")
	rest, err := parseInterspersed(fs, args)
	if err != nil || len(rest) > 1 {
		return ErrUsage
	}
	q := url.Values{"status": {*status}}
	if len(rest) == 1 {
		q.Set("q", rest[0])
	}

	resp, body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/api/records?"+q.Encode()))
	if err != nil {
		return err
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	var list []model.Record
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	now := time.Now()
	for _, r := range list {
		st := expiry.Evaluate(r.ExpiresAt, now)
		fmt.Fprintf(Out, "- %s  @%s  %s  status=%s  %s\n", r.ID, r.Username, r.Name, r.Status, expiryLine(st))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func expiryLine(st expiry.Status) string {
	if st.Expired {
		return "[" + string(st.Tier) + "] " + st.Heading
	}
	return "[" + string(st.Tier) + "] " + st.Message
}

func init() { RegisterCmd(recordsCmd{}) }
