package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

type certificateCmd struct{}

func (certificateCmd) Name() string { return "certificate" }
func (certificateCmd) Description() string {
	return "Сохранить HTML-сертификат записи (без файла — вывести ссылку)"
}
func (certificateCmd) Usage() string { return "certificate <id> [file]" }

func (certificateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return ErrUsage
	}
	link := api.Endpoint(cfg.ServerURL, "/certificate/"+url.PathEscape(args[0]))
	resp, body, err := api.Get(ctx, link)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("certificate %s not found", args[0])
	}
	if err := api.Expect(resp, body, http.StatusOK); err != nil {
		return err
	}
	if len(args) == 1 {
		fmt.Fprintln(Out, link)
		return nil
	}
	if err := os.WriteFile(args[1], body, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Certificate saved to %s\n", args[1])
	return nil
}

func init() { RegisterCmd(certificateCmd{}) }
