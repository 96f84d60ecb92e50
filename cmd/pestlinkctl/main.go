// pestlinkctl is a thin terminal front end over the gateway, mainly used to
// poke a backend during development: log in, list records, watch the live
// notification feed.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pestlinkgw/internal/config"
	"pestlinkgw/internal/gateway"
	"pestlinkgw/internal/session"
	"pestlinkgw/internal/shared/logging"
	"pestlinkgw/internal/stream"
	"pestlinkgw/internal/transport"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg := config.Load()

	logger := logging.New(os.Stderr, logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(logger)

	sess := session.New(session.NewFileStore(cfg.Session.TokenDir), logger)
	sess.LoadPersisted()

	rest := transport.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sess, nil, logger)
	gw := gateway.New(rest, sess, logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, gw, cfg, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, gw *gateway.Gateway, cfg *config.Config, command string, args []string) error {
	switch command {
	case "login":
		if len(args) < 2 {
			return errors.New("usage: pestlinkctl login <email> <password>")
		}
		result, err := gw.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(result)
	case "logout":
		gw.Logout()
		fmt.Println("logged out")
		return nil
	case "customers":
		customers, err := gw.ListCustomers(ctx)
		if err != nil {
			slog.Warn("customer list degraded", slog.Any("error", err))
		}
		return printJSON(customers)
	case "technicians":
		technicians, err := gw.ListTechnicians(ctx)
		if err != nil {
			slog.Warn("technician list degraded", slog.Any("error", err))
		}
		return printJSON(technicians)
	case "appointments":
		appointments, err := gw.ListAppointments(ctx)
		if err != nil {
			slog.Warn("appointment list degraded", slog.Any("error", err))
		}
		return printJSON(appointments)
	case "bait-types":
		baits, err := gw.ListBaitTypes(ctx)
		if err != nil {
			slog.Warn("bait type list degraded", slog.Any("error", err))
		}
		return printJSON(baits)
	case "chemicals":
		chemicals, err := gw.ListChemicals(ctx)
		if err != nil {
			slog.Warn("chemical list degraded", slog.Any("error", err))
		}
		return printJSON(chemicals)
	case "dashboard":
		dashboard, err := gw.CustomerDashboard(ctx)
		if err != nil {
			return err
		}
		return printJSON(dashboard)
	case "kpis":
		kpis, err := gw.EnhancedKPIs(ctx)
		if err != nil {
			return err
		}
		return printJSON(kpis)
	case "watch":
		return watch(ctx, gw, cfg)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// watch streams live notifications until interrupted.
func watch(ctx context.Context, gw *gateway.Gateway, cfg *config.Config) error {
	if !cfg.Stream.Enabled {
		return errors.New("notification stream is disabled; set PESTLINK_STREAM=true")
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	subscriber := stream.NewSubscriber(cfg.API.BaseURL, gw.Session(), slog.Default())
	go subscriber.Run(ctx)

	for notification := range subscriber.Notifications() {
		if err := printJSON(notification); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pestlinkctl <command> [args]

commands:
  login <email> <password>   authenticate and persist the session token
  logout                     clear the persisted session token
  customers                  list customers
  technicians                list technicians
  appointments               list appointments
  bait-types                 list bait products
  chemicals                  list chemical products
  dashboard                  customer portal dashboard
  kpis                       enhanced dashboard KPIs
  watch                      stream live notifications`)
}
