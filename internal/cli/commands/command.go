package commands

import (
	"VeriUser/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command — подкоманда клиента VeriUser.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "records".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "record <id>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage — общая справка: команды, адрес сервера и коды завершения.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("VeriUser CLI — клиент реестра верификаций\n\n")
	b.WriteString("Usage:\n  veriuser-cli [-base-url host:port] [-https] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-16s %s\n", c.Name(), c.Description())
	}
	b.WriteString("\nСервер берётся из BASE_URL / ENABLE_HTTPS или флагов (по умолчанию http://localhost:8081).\n")
	b.WriteString("Подробнее о команде: veriuser-cli help <command>\n\n")
	b.WriteString("Exit codes:\n")
	fmt.Fprintf(&b, "  %d ok, %d ошибка, %d неверные аргументы, %d не найдено,\n", ExitOK, ExitError, ExitUsage, ExitNotFound)
	fmt.Fprintf(&b, "  %d некорректные данные, %d запрещено, %d сервер недоступен\n", ExitInvalid, ExitConflict, ExitUnavailable)
	return b.String()
}

// FormatCommandUsage — справка по одной команде.
func FormatCommandUsage(c Command) string {
	return fmt.Sprintf("Usage: %s\n  %s\n", c.Usage(), c.Description())
}
