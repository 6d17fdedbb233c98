package commands

import (
	"VeriUser/internal/cli/api"
	"VeriUser/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Коды завершения клиента.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitInvalid     = 4
	ExitConflict    = 5
	ExitUnavailable = 6
	ExitInterrupted = 130
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // veriuser-cli help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprint(Out, FormatCommandUsage(c))
			return ExitOK
		}
		fmt.Fprintf(Out, "Неизвестная команда: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Неизвестная команда: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(Out, FormatCommandUsage(c))
		return ExitUsage
	}
	msg, code := describeError(cfg, err)
	fmt.Fprintf(Out, "%s: %s\n", name, msg)
	return code
}

// describeError переводит ошибку команды в сообщение и код завершения.
func describeError(cfg *config.Config, err error) (string, int) {
	if errors.Is(err, context.Canceled) {
		return "прервано", ExitInterrupted
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusNotFound:
			return "не найдено", ExitNotFound
		case http.StatusUnprocessableEntity:
			if len(apiErr.Fields) > 0 {
				return "некорректные поля: " + strings.Join(apiErr.Fields, ", "), ExitInvalid
			}
			return "некорректные данные", ExitInvalid
		case http.StatusBadRequest:
			return "сервер отклонил запрос: " + apiErr.Message, ExitInvalid
		case http.StatusRequestEntityTooLarge:
			return "файл превышает лимит сервера", ExitInvalid
		case http.StatusConflict:
			return "операция запрещена: " + apiErr.Message, ExitConflict
		}
		return apiErr.Error(), ExitError
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("сервер %s недоступен: %v", cfg.ServerURL, urlErr.Err), ExitUnavailable
	}
	return err.Error(), ExitError
}
